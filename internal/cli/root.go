package cli

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

const DefaultServerURL = "http://localhost:8080"

// New returns the customer-search root command.
func New() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:           "customer-search <command> [flags]",
		Short:         "Browse and add customers of a customers API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: heredoc.Doc(`
			$ customer-search browse
			$ customer-search --server http://localhost:9090 browse
			$ customer-search add --first-name Ada --last-name Lovelace --phone "+44 20 7946 0000"
		`),
	}

	cmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL(), "base url of the customers API (CUSTOMERS_API_URL)")

	cmd.AddCommand(browseCommand(&serverURL))
	cmd.AddCommand(addCommand(&serverURL))
	return cmd
}

func defaultServerURL() string {
	if u := os.Getenv("CUSTOMERS_API_URL"); u != "" {
		return u
	}
	return DefaultServerURL
}
