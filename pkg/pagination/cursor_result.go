package pagination

// CursorResult represents a keyset paginated result
// Generic type T allows reuse across different entity types
type CursorResult[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
	HasMore    bool    `json:"has_more"`
}

// NewCursorResult creates a new cursor-based result from a lookahead fetch.
// If there are more items than requested (size+1), it:
// - Returns only the requested number of items
// - Sets HasMore to true
// - Takes NextCursor from the last returned item
func NewCursorResult[T any](items []T, size int, cursorFn func(T) string) *CursorResult[T] {
	hasMore := len(items) > size

	if hasMore {
		items = items[:size]
	}
	if items == nil {
		items = make([]T, 0)
	}

	result := &CursorResult[T]{
		Items:   items,
		HasMore: hasMore,
	}

	if hasMore && len(items) > 0 {
		cursor := cursorFn(items[len(items)-1])
		result.NextCursor = &cursor
	}

	return result
}
