// Package validation provides composable single-field validators and a
// runner that applies them to a set of form values.
//
// A Validator returns a human-readable description of what is wrong with a
// value, or an empty string when the value is valid.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type Validator func(value string) string

var validate = validator.New()

// Required fails for the empty value.
func Required(description string) Validator {
	return func(value string) string {
		if value == "" {
			return description
		}
		return ""
	}
}

// Match fails when value does not satisfy pattern. It does not enforce
// presence on its own; combine it with Required through List.
func Match(pattern *regexp.Regexp, description string) Validator {
	return func(value string) string {
		if !pattern.MatchString(value) {
			return description
		}
		return ""
	}
}

// Tag fails when value is rejected by a go-playground/validator tag such as
// "max=64" or "e164".
func Tag(tag, description string) Validator {
	return func(value string) string {
		if err := validate.Var(value, tag); err != nil {
			return description
		}
		return ""
	}
}

// List runs validators in order and returns the first failure.
func List(validators ...Validator) Validator {
	return func(value string) string {
		for _, v := range validators {
			if desc := v(value); desc != "" {
				return desc
			}
		}
		return ""
	}
}
