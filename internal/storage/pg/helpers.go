package pg

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/jackc/pgx/v5"
)

var customerColumns = []string{"id", "first_name", "last_name", "phone_number"}

// MapToCustomer scans one row selected with customerColumns.
func MapToCustomer(row pgx.CollectableRow) (domain.Customer, error) {
	var c domain.Customer
	var id string

	if err := row.Scan(&id, &c.FirstName, &c.LastName, &c.PhoneNumber); err != nil {
		return domain.Customer{}, fmt.Errorf("failed to scan customer: %w", err)
	}
	c.ID = domain.Key(id)

	return c, nil
}

func customerValues(c domain.Customer) []any {
	return []any{c.ID.String(), c.FirstName, c.LastName, c.PhoneNumber}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
