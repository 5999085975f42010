package validation

// Errors maps a field name to its error description. An empty description
// means the field is valid.
type Errors map[string]string

// ValidateMany runs every validator against the value of its field. Fields
// missing from values are validated as empty. The result has exactly the
// fields of validators.
func ValidateMany(validators map[string]Validator, values map[string]string) Errors {
	errs := make(Errors, len(validators))
	for field, v := range validators {
		errs[field] = v(values[field])
	}
	return errs
}

func HasError(errs Errors, field string) bool {
	return errs[field] != ""
}

func AnyErrors(errs Errors) bool {
	for _, desc := range errs {
		if desc != "" {
			return true
		}
	}
	return false
}

// Failed returns only the fields that carry an error.
func (e Errors) Failed() Errors {
	failed := make(Errors)
	for field, desc := range e {
		if desc != "" {
			failed[field] = desc
		}
	}
	return failed
}
