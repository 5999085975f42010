package cli

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/customer-search/internal/apperr"
	"github.com/DjordjeVuckovic/customer-search/internal/client"
	"github.com/DjordjeVuckovic/customer-search/internal/customer"
	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/validation"
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

var errInvalidCustomer = errors.New("customer is invalid")

var fieldOrder = []string{customer.FieldFirstName, customer.FieldLastName, customer.FieldPhoneNumber}

func addCommand(serverURL *string) *cobra.Command {
	var c domain.Customer

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a customer",
		Args:  cobra.NoArgs,
		Example: heredoc.Doc(`
			$ customer-search add --first-name Grace --last-name Hopper --phone "555-0100"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if errs := customer.Validate(c); validation.AnyErrors(errs) {
				renderFieldErrors(out, errs, fieldOrder)
				return errInvalidCustomer
			}

			customers, err := client.NewCustomers(*serverURL)
			if err != nil {
				return err
			}

			saved, err := customers.Create(cmd.Context(), c)
			var fe *apperr.FieldError
			if errors.As(err, &fe) {
				renderFieldErrors(out, fe.Fields, fieldOrder)
				return fmt.Errorf("server rejected customer: %w", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "added customer %s\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&c.FirstName, "first-name", "", "first name of the customer")
	cmd.Flags().StringVar(&c.LastName, "last-name", "", "last name of the customer")
	cmd.Flags().StringVar(&c.PhoneNumber, "phone", "", "phone number, digits, spaces and ( ) + -")
	return cmd
}
