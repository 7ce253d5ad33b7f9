package validator

import "strings"

// RequiredString fails when value is empty or only whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:             field,
			Message:           ErrFieldRequired.Error(),
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
