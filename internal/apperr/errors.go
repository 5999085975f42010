package apperr

import (
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/customer-search/internal/validation"
)

// ValidationError reports a malformed request, such as an out-of-range limit.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// FieldError reports a submitted form whose fields failed validation.
// Fields only holds the failing fields.
type FieldError struct {
	Message string
	Fields  validation.Errors
}

func NewFieldError(msg string, errs validation.Errors) *FieldError {
	return &FieldError{Message: msg, Fields: errs.Failed()}
}

func (e *FieldError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	if len(parts) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}
