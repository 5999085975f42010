package customer

import (
	"fmt"
	"regexp"

	"github.com/DjordjeVuckovic/customer-search/internal/domain"
	"github.com/DjordjeVuckovic/customer-search/internal/validation"
)

const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldPhoneNumber = "phoneNumber"
)

const maxNameLength = 64

var maxLengthTag = fmt.Sprintf("max=%d", maxNameLength)

var phoneNumberPattern = regexp.MustCompile(`^[0-9+()\- ]*$`)

// FormValidators returns the validators of the customer data-entry form,
// keyed by JSON field name.
func FormValidators() map[string]validation.Validator {
	return map[string]validation.Validator{
		FieldFirstName: validation.List(
			validation.Required("First name is required"),
			validation.Tag(maxLengthTag, fmt.Sprintf("First name must be at most %d characters", maxNameLength)),
		),
		FieldLastName: validation.List(
			validation.Required("Last name is required"),
			validation.Tag(maxLengthTag, fmt.Sprintf("Last name must be at most %d characters", maxNameLength)),
		),
		FieldPhoneNumber: validation.List(
			validation.Required("Phone number is required"),
			validation.Match(phoneNumberPattern, "Only numbers, spaces and these symbols are allowed: ( ) + -"),
		),
	}
}

// Values flattens c into the form's field values.
func Values(c domain.Customer) map[string]string {
	return map[string]string{
		FieldFirstName:   c.FirstName,
		FieldLastName:    c.LastName,
		FieldPhoneNumber: c.PhoneNumber,
	}
}

func Validate(c domain.Customer) validation.Errors {
	return validation.ValidateMany(FormValidators(), Values(c))
}
