package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNamePattern  = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
	countryCodePattern = regexp.MustCompile(`^[A-Z]{2,3}$`)
)

// FieldErrors maps a field path (json names, dot-separated for nested
// structs) to its human-readable message. It satisfies error so it can
// flow through the usual return paths.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for _, msg := range e {
		return msg
	}
	return "invalid input"
}

// AsFieldErrors extracts per-field messages from a validation failure.
func AsFieldErrors(err error) (FieldErrors, bool) {
	fields, ok := err.(FieldErrors)
	return fields, ok
}

// Validator checks request payloads before any store or network
// interaction happens.
type Validator struct {
	inner *validator.Validate
}

// New builds a validator with the console's custom rules registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// Letters and spaces only, accented characters included.
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})

	// At least one lowercase letter, one uppercase letter and one digit.
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		var lower, upper, digit bool
		for _, r := range value {
			switch {
			case r >= 'a' && r <= 'z':
				lower = true
			case r >= 'A' && r <= 'Z':
				upper = true
			case r >= '0' && r <= '9':
				digit = true
			}
		}
		return lower && upper && digit
	})

	// Uppercase ISO-style country code.
	_ = v.RegisterValidation("country_code", func(fl validator.FieldLevel) bool {
		return countryCodePattern.MatchString(fl.Field().String())
	})

	return &Validator{inner: v}
}

// Struct validates the payload and returns FieldErrors on rejection.
func (v *Validator) Struct(payload interface{}) error {
	err := v.inner.Struct(payload)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"_": err.Error()}
	}

	fields := FieldErrors{}
	for _, fe := range violations {
		fields[fieldPath(fe)] = messageFor(fe)
	}
	return fields
}

// fieldPath strips the root struct name from the namespace, leaving
// the json path of the offending field.
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) <= 1 {
		return fe.Field()
	}
	return strings.Join(parts[1:], ".")
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "invalid email format"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		}
		return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "nefield":
		return "new password must differ from the current password"
	case "person_name":
		return fmt.Sprintf("%s must contain only letters and spaces", field)
	case "password_strength":
		return fmt.Sprintf("%s must contain at least one lowercase letter, one uppercase letter and one digit", field)
	case "country_code":
		return "country code must be 2-3 uppercase letters"
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "uuid":
		return "invalid id"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
