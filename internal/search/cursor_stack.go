package search

import "github.com/DjordjeVuckovic/customer-search/internal/domain"

// CursorStack holds the boundary keys of every page visited after the first.
// It is a value type: each operation returns a new stack and leaves the
// receiver untouched.
type CursorStack struct {
	keys []domain.Key
}

// NewCursorStack returns a stack holding keys in push order.
func NewCursorStack(keys ...domain.Key) CursorStack {
	return CursorStack{keys: append([]domain.Key(nil), keys...)}
}

// CurrentAfter returns the last pushed key, or the zero key when empty.
func (s CursorStack) CurrentAfter() domain.Key {
	if len(s.keys) == 0 {
		return ""
	}
	return s.keys[len(s.keys)-1]
}

func (s CursorStack) Push(key domain.Key) CursorStack {
	keys := make([]domain.Key, len(s.keys), len(s.keys)+1)
	copy(keys, s.keys)
	return CursorStack{keys: append(keys, key)}
}

// Pop drops the last key. Popping an empty stack yields an empty stack.
func (s CursorStack) Pop() CursorStack {
	if len(s.keys) == 0 {
		return CursorStack{}
	}
	return NewCursorStack(s.keys[:len(s.keys)-1]...)
}

func (s CursorStack) Reset() CursorStack {
	return CursorStack{}
}

func (s CursorStack) Len() int {
	return len(s.keys)
}

func (s CursorStack) IsEmpty() bool {
	return len(s.keys) == 0
}

// Keys returns a copy of the stored keys, oldest first.
func (s CursorStack) Keys() []domain.Key {
	return append([]domain.Key(nil), s.keys...)
}
