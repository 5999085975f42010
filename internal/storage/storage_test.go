package storage

import (
	"testing"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	c := domain.Customer{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "+44 123"}

	tests := []struct {
		term string
		want bool
	}{
		{term: "", want: true},
		{term: "ada", want: true},
		{term: "LOVE", want: true},
		{term: "44 1", want: true},
		{term: "babbage", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(c, tt.term))
		})
	}
}

func TestNewID_IsOrdered(t *testing.T) {
	first, err := NewID()
	require.NoError(t, err)
	second, err := NewID()
	require.NoError(t, err)

	assert.False(t, first.IsZero())
	assert.Less(t, first.String(), second.String())
}

func TestWithID(t *testing.T) {
	kept, err := WithID(domain.Customer{ID: "given"})
	require.NoError(t, err)
	assert.Equal(t, domain.Key("given"), kept.ID)

	assigned, err := WithID(domain.Customer{FirstName: "A"})
	require.NoError(t, err)
	assert.False(t, assigned.ID.IsZero())
	assert.Equal(t, "A", assigned.FirstName)
}
