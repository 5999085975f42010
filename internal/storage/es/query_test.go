package es

import (
	"testing"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery_EmptyTermMatchesAll(t *testing.T) {
	q := buildQuery("")

	assert.NotNil(t, q.MatchAll)
	assert.Nil(t, q.Bool)
}

func TestBuildQuery_TermBecomesWildcardPerField(t *testing.T) {
	q := buildQuery("a*b")

	require.NotNil(t, q.Bool)
	require.Len(t, q.Bool.Should, len(searchFields))
	assert.Equal(t, 1, q.Bool.MinimumShouldMatch)

	for i, field := range searchFields {
		wq, ok := q.Bool.Should[i].Wildcard[field]
		require.True(t, ok, "field %s", field)
		require.NotNil(t, wq.Value)
		assert.Equal(t, `*a\*b*`, *wq.Value)
		require.NotNil(t, wq.CaseInsensitive)
		assert.True(t, *wq.CaseInsensitive)
	}
}

func TestDocumentRoundtrip(t *testing.T) {
	c := domain.Customer{ID: "1", FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "123"}

	assert.Equal(t, c, toDocument(c).toDomain())
}

func TestBuildMapping_KeywordFields(t *testing.T) {
	m := buildMapping()

	for _, field := range append([]string{"id"}, searchFields...) {
		prop, ok := m.Properties[field]
		require.True(t, ok, "field %s", field)
		assert.IsType(t, &types.KeywordProperty{}, prop)
	}
}
