package es

import (
	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// searchFields are matched by the free-text search term.
var searchFields = []string{"first_name", "last_name", "phone_number"}

// CustomerDocument is the indexed form of a customer.
type CustomerDocument struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

func toDocument(c domain.Customer) CustomerDocument {
	return CustomerDocument{
		ID:          c.ID.String(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
}

func (d CustomerDocument) toDomain() domain.Customer {
	return domain.Customer{
		ID:          domain.Key(d.ID),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		PhoneNumber: d.PhoneNumber,
	}
}

// buildMapping maps every field as a keyword. id must be a keyword to be
// sortable for search_after, and the text fields are matched with
// case-insensitive wildcards, which also run on keywords.
func buildMapping() *types.TypeMapping {
	properties := map[string]types.Property{
		"id": types.NewKeywordProperty(),
	}
	for _, field := range searchFields {
		properties[field] = types.NewKeywordProperty()
	}
	return &types.TypeMapping{Properties: properties}
}
