package search

import (
	"context"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
)

// Fetcher retrieves one page of customers for a query string produced by
// BuildQuery.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]domain.Customer, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, query string) ([]domain.Customer, error)

func (f FetcherFunc) Fetch(ctx context.Context, query string) ([]domain.Customer, error) {
	return f(ctx, query)
}
