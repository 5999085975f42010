package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/customer-search/internal/client"
	"github.com/DjordjeVuckovic/customer-search/internal/search"
	"github.com/DjordjeVuckovic/customer-search/pkg/pagination"
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

var browseHelp = heredoc.Doc(`
	n          next page
	p          previous page
	l <size>   page size, one of 10, 20, 50, 100
	s [text]   filter by name or phone number, empty clears the filter
	r          reload the current page
	q          quit
`)

func browseCommand(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "page through customers interactively",
		Args:  cobra.NoArgs,
		Example: heredoc.Doc(`
			$ customer-search browse
			> s smith
			> n
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := client.NewCustomers(*serverURL)
			if err != nil {
				return err
			}
			return NewSession(customers, cmd.OutOrStdout()).Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// Session is one interactive browsing session over a search.Controller.
type Session struct {
	ctrl *search.Controller
	out  io.Writer
}

func NewSession(fetcher search.Fetcher, out io.Writer) *Session {
	return &Session{
		ctrl: search.NewController(fetcher),
		out:  out,
	}
}

// Run loads the first page and then executes commands read from in until
// q or end of input. Fetch failures are printed and do not end the session.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.report(s.ctrl.Initialize(ctx))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		quit, err := s.exec(ctx, strings.TrimSpace(scanner.Text()))
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
	}
}

func (s *Session) exec(ctx context.Context, line string) (bool, error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "":
		return false, nil
	case "q":
		return true, nil
	case "n":
		s.report(s.ctrl.Next(ctx))
	case "p":
		s.report(s.ctrl.Previous(ctx))
	case "r":
		s.report(s.ctrl.Reload(ctx))
	case "s":
		s.report(s.ctrl.SetSearchTerm(ctx, arg))
	case "l":
		size, err := strconv.Atoi(arg)
		if err != nil || !pagination.IsPageSize(size) {
			return false, fmt.Errorf("page size must be one of %v", pagination.PageSizes)
		}
		s.report(s.ctrl.SetLimit(ctx, size))
	case "h", "?":
		fmt.Fprint(s.out, browseHelp)
	default:
		return false, fmt.Errorf("unknown command %q, type h for help", name)
	}
	return false, nil
}

func (s *Session) report(err error) {
	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}
	renderPage(s.out, s.ctrl.State())
}
