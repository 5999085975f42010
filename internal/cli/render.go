package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/customer-search/internal/search"
)

func renderPage(w io.Writer, st search.State) {
	filter := st.SearchTerm
	if filter == "" {
		filter = "-"
	}
	fmt.Fprintf(w, "page %d | size %d | filter %s\n", st.Cursors.Len()+1, st.Limit, filter)

	if len(st.Results) == 0 {
		fmt.Fprintln(w, "no customers")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME\tPHONE")
	for _, c := range st.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.FirstName, c.LastName, c.PhoneNumber)
	}
	_ = tw.Flush()
}

func renderFieldErrors(w io.Writer, fields map[string]string, order []string) {
	for _, name := range order {
		if msg := fields[name]; msg != "" {
			fmt.Fprintf(w, "  %s: %s\n", name, strings.TrimSpace(msg))
		}
	}
}
