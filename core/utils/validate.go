package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Enum is implemented by closed enumerations that can report their own validity.
type Enum interface {
	IsValid() bool
}

// NewValidator returns a validator with the "enum" tag registered.
// The tag passes when the field implements Enum and reports itself valid.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(Enum)
		return ok && e.IsValid()
	})
	return v
}

// ProcessValidationErrors maps each failing field to the tag that rejected it.
func ProcessValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	errorResponse := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}

// ValidationMessage renders validation errors as a single stable sentence.
func ValidationMessage(err error) string {
	fields := ProcessValidationErrors(err)
	parts := make([]string, 0, len(fields))
	for field, tag := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, tag))
	}
	sort.Strings(parts)
	return "invalid request: " + strings.Join(parts, ", ")
}
