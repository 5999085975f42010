package search

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
)

// BuildQuery assembles the query string sent to the customers endpoint.
// Only set parameters are emitted, always in the order limit, after, searchTerm.
// The search term is passed through verbatim, callers relying on exact
// query strings depend on that.
func BuildQuery(limit int, after domain.Key, searchTerm string) string {
	var pairs []string
	if limit != 0 {
		pairs = append(pairs, "limit="+strconv.Itoa(limit))
	}
	if !after.IsZero() {
		pairs = append(pairs, "after="+after.String())
	}
	if searchTerm != "" {
		pairs = append(pairs, "searchTerm="+searchTerm)
	}

	if len(pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(pairs, "&")
}
