package goerror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"server", NewServer(errors.New("boom")), http.StatusInternalServerError},
		{"invalid format", NewInvalidFormat(), http.StatusBadRequest},
		{"invalid input", NewInvalidInput(errors.New("x")), http.StatusUnprocessableEntity},
		{"not found", NewBusiness("missing", CodeNotFound), http.StatusNotFound},
		{"conflict", NewBusiness("dup", CodeConflict), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gerr *Error
			require.True(t, errors.As(tt.err, &gerr))
			assert.Equal(t, tt.want, gerr.StatusCode())
		})
	}
}

func TestNewInvalidInput_Unwrap(t *testing.T) {
	inner := errors.New("fields")
	err := NewInvalidInput(inner)

	assert.ErrorIs(t, err, inner)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "Validation error", gerr.Msg())
	assert.Equal(t, TypeValidation, gerr.Type())
}

func TestNewInvalidFormat_Message(t *testing.T) {
	var gerr *Error
	require.True(t, errors.As(NewInvalidFormat("Invalid reference"), &gerr))
	assert.Equal(t, "Invalid reference", gerr.Msg())
	assert.Equal(t, CodeInvalidFormat, gerr.Code())
}
