package validation

import (
	"errors"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Field pairs a request field with the rules its value must satisfy.
type Field struct {
	Name  string
	Value any
	Rules []ozzo.Rule
}

func NewField(name string, value any, rules ...ozzo.Rule) Field {
	return Field{Name: name, Value: value, Rules: rules}
}

// Check evaluates every rule of every field, in order, and returns all
// violations. A nil result means the input is valid.
func Check(fields ...Field) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		for _, rule := range f.Rules {
			if err := ozzo.Validate(f.Value, rule); err != nil {
				errs = append(errs, toFieldError(f.Name, err))
			}
		}
	}
	return errs
}

func toFieldError(field string, err error) FieldError {
	fe := FieldError{Field: field, Rule: "invalid", Message: err.Error()}

	var verr ozzo.Error
	if errors.As(err, &verr) {
		fe.Rule = strings.TrimPrefix(verr.Code(), "validation_")
	}
	return fe
}

// ISODate accepts an empty string or a value that parse understands.
func ISODate(parse func(string) error, message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if parse(s) != nil {
			return ozzo.NewError("validation_iso8601", message)
		}
		return nil
	})
}

// ID accepts an empty string or a UUID.
func ID(message string) ozzo.Rule {
	return ozzo.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := uuid.Parse(s); err != nil {
			return ozzo.NewError("validation_id", message)
		}
		return nil
	})
}
