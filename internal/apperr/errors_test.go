package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/customer-search/internal/apperr"
	"github.com/DjordjeVuckovic/customer-search/internal/validation"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("limit is invalid")

	if err.Error() != "limit is invalid" {
		t.Errorf("expected 'limit is invalid', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("strconv.Atoi: parsing \"ten\": invalid syntax")
	err := apperr.NewValidationWrap("invalid limit", inner)

	if err.Error() != `invalid limit: strconv.Atoi: parsing "ten": invalid syntax` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("limit must be at most 100")

	wrapped := fmt.Errorf("failed to bind request: %w", original)
	doubleWrapped := fmt.Errorf("storage error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "limit must be at most 100" {
		t.Errorf("expected 'limit must be at most 100', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestFieldError_KeepsOnlyFailingFields(t *testing.T) {
	err := apperr.NewFieldError("customer is invalid", validation.Errors{
		"firstName":   "First name is required",
		"lastName":    "",
		"phoneNumber": "Phone number is required",
	})

	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 failing fields, got %d", len(err.Fields))
	}
	want := "customer is invalid (firstName: First name is required; phoneNumber: Phone number is required)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestFieldError_SurvivesFmtWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create customer: %w", apperr.NewFieldError("customer is invalid", validation.Errors{"lastName": "Last name is required"}))

	var fe *apperr.FieldError
	if !errors.As(wrapped, &fe) {
		t.Fatal("errors.As should find FieldError through wrapping")
	}
	if fe.Fields["lastName"] != "Last name is required" {
		t.Errorf("unexpected fields %v", fe.Fields)
	}
}
