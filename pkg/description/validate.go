package description

import (
	"fmt"
	"strings"
)

// FieldError reports a required field left empty.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failing field of a plane.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	messages := make([]string, len(e))
	for i, fe := range e {
		messages[i] = fe.Error()
	}
	return "invalid description: " + strings.Join(messages, "; ")
}

// Field returns the error of the named field, if any.
func (e ValidationErrors) Field(name string) (FieldError, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe, true
		}
	}
	return FieldError{}, false
}

type requirement struct {
	field   string
	value   string
	message string
}

// Validate checks the required fields of a plane. Every field is checked,
// so all failures are reported together. The general and recurring planes
// have no required fields.
func Validate(fields Fields) error {
	var checks []requirement

	switch f := fields.(type) {
	case TravelFields:
		checks = []requirement{
			{"tag", f.Tag, "Please fill in the tag."},
			{"from", f.From, "Please fill in the origin."},
			{"to", f.To, "Please fill in the destination."},
		}
	case BusFields:
		checks = []requirement{
			{"tag", f.Tag, "Please fill in the tag."},
			{"route", f.Route, "Please fill in the route."},
			{"from", f.From, "Please fill in the origin."},
			{"to", f.To, "Please fill in the destination."},
		}
	}

	var errs ValidationErrors
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			errs = append(errs, FieldError{Field: c.field, Message: c.message})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
