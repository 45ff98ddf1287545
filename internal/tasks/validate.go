package tasks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	oerrors "github.com/fastkit/cli/internal/errors"
)

// FieldError describes one invalid input.
type FieldError struct {
	// Location is the path to the value, e.g. ["body", "title"] or ["query", "skip"].
	Location []string `json:"loc"`

	// Message is human readable.
	Message string `json:"msg"`

	// Type is a stable machine readable code.
	Type string `json:"type"`
}

// ValidationError lists every invalid input of a request.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(f.Location, "."), f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match oerrors.ErrValidation.
func (e *ValidationError) Unwrap() error {
	return oerrors.ErrValidation
}

// NewFieldError returns a ValidationError with a single field.
func NewFieldError(loc []string, msg, typ string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Location: loc, Message: msg, Type: typ}}}
}

// newValidator returns a validator that reports JSON field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// translate converts validator errors into FieldErrors located under the body.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, fieldError([]string{"body", fe.Field()}, fe.Tag(), fe.Param()))
	}
	return out
}

// fieldError maps a validator tag to a message and type.
func fieldError(loc []string, tag, param string) FieldError {
	switch tag {
	case "required":
		return FieldError{Location: loc, Message: "Field required", Type: "missing"}
	case "min":
		return FieldError{Location: loc, Message: fmt.Sprintf("String should have at least %s character(s)", param), Type: "string_too_short"}
	case "max":
		return FieldError{Location: loc, Message: fmt.Sprintf("String should have at most %s characters", param), Type: "string_too_long"}
	case "oneof":
		return FieldError{Location: loc, Message: "Input should be 'todo', 'in_progress' or 'done'", Type: "enum"}
	default:
		return FieldError{Location: loc, Message: fmt.Sprintf("failed on the '%s' rule", tag), Type: tag}
	}
}

// validateVar checks a single value against validator tags.
func validateVar(v *validator.Validate, loc []string, value any, tags string) *FieldError {
	err := v.Var(value, tags)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := fieldError(loc, verrs[0].Tag(), verrs[0].Param())
		return &fe
	}
	return &FieldError{Location: loc, Message: err.Error(), Type: "value_error"}
}
