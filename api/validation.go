package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError lists the fields of a request that failed validation.
// It wraps ErrInvalidRequest.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}
	return "invalid request: " + strings.Join(msgs, " ")
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidRequest
}

func validateStruct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidRequest, err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = fmt.Sprintf("The %s field is required.", name)
		case "email":
			fields[name] = fmt.Sprintf("The %s must be a valid email address.", name)
		case "min":
			fields[name] = fmt.Sprintf("The %s must be at least %s.", name, fe.Param())
		case "oneof":
			fields[name] = fmt.Sprintf("The %s must be one of: %s.", name, fe.Param())
		default:
			fields[name] = fmt.Sprintf("The %s field is invalid.", name)
		}
	}
	return &ValidationError{Fields: fields}
}
