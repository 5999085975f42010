package storage

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
)

// Query selects one keyset page of customers.
type Query struct {
	// After is the id of the last customer of the previous page, zero for the first page.
	After      domain.Key
	SearchTerm string
	Limit      int
}

type Reader interface {
	// Search returns at most q.Limit customers ordered by id ascending, all
	// with an id greater than q.After and matching q.SearchTerm.
	Search(ctx context.Context, q Query) ([]domain.Customer, error)
}

// Matches reports whether term occurs, case-insensitively, in the first
// name, last name or phone number of c. The empty term matches everything.
func Matches(c domain.Customer, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{c.FirstName, c.LastName, c.PhoneNumber} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
