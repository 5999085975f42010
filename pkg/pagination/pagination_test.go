package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPageSize(t *testing.T) {
	for _, size := range []int{10, 20, 50, 100} {
		assert.True(t, IsPageSize(size), "size %d", size)
	}
	for _, size := range []int{0, -10, 15, 1000} {
		assert.False(t, IsPageSize(size), "size %d", size)
	}
}

func TestCursorRequest_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "unset uses default", limit: 0, want: DefaultPageSize},
		{name: "negative uses default", limit: -5, want: DefaultPageSize},
		{name: "kept when in range", limit: 50, want: 50},
		{name: "capped at max", limit: 500, want: MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CursorRequest{Limit: tt.limit}
			r.Normalize()
			assert.Equal(t, tt.want, r.Limit)
		})
	}
}

func TestNewCursorResult(t *testing.T) {
	cursorFn := func(i int) string { return strconv.Itoa(i) }

	t.Run("lookahead item trimmed", func(t *testing.T) {
		res := NewCursorResult([]int{1, 2, 3}, 2, cursorFn)
		assert.Equal(t, []int{1, 2}, res.Items)
		assert.True(t, res.HasMore)
		require.NotNil(t, res.NextCursor)
		assert.Equal(t, "2", *res.NextCursor)
	})

	t.Run("last page", func(t *testing.T) {
		res := NewCursorResult([]int{1, 2}, 2, cursorFn)
		assert.Equal(t, []int{1, 2}, res.Items)
		assert.False(t, res.HasMore)
		assert.Nil(t, res.NextCursor)
	})

	t.Run("nil items become empty", func(t *testing.T) {
		res := NewCursorResult[int](nil, 10, cursorFn)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
	})
}
