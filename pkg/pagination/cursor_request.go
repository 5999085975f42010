package pagination

// CursorRequest represents a keyset pagination request.
// After is the id of the last item of the previous page.
type CursorRequest struct {
	Limit      int    `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	After      string `json:"after,omitempty" query:"after"`
	SearchTerm string `json:"searchTerm,omitempty" query:"searchTerm"`
}

// Normalize fills in the default page size
func (r *CursorRequest) Normalize() {
	if r.Limit <= 0 {
		r.Limit = DefaultPageSize
	}
	if r.Limit > MaxPageSize {
		r.Limit = MaxPageSize
	}
}
