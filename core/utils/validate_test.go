package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type color string

func (c color) IsValid() bool { return c == "RED" || c == "BLUE" }

type paintRequest struct {
	Color color  `validate:"enum"`
	Notes string `validate:"required"`
}

func TestNewValidator_Enum(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(paintRequest{Color: "RED", Notes: "ok"}))

	err := v.Struct(paintRequest{Color: "GREEN"})
	assert.Error(t, err)

	fields := ProcessValidationErrors(err)
	assert.Equal(t, "enum", fields["Color"])
	assert.Equal(t, "required", fields["Notes"])
	assert.Equal(t, "invalid request: Color: enum, Notes: required", ValidationMessage(err))
}

func TestProcessValidationErrors_Other(t *testing.T) {
	fields := ProcessValidationErrors(errors.New("boom"))
	assert.Equal(t, "boom", fields["_"])
}
