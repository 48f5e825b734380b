package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorCarriesCodeAndMessage(t *testing.T) {
	err := NewError(http.StatusNotFound, "thing not found")

	var respErr *Error
	assert.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusNotFound, respErr.Code)
	assert.Equal(t, "thing not found", err.Error())
}

func TestErrorsIsMatchesByCodeAndMessage(t *testing.T) {
	sentinel := NewError(http.StatusConflict, "already exists")

	assert.ErrorIs(t, NewError(http.StatusConflict, "already exists"), sentinel)
	assert.NotErrorIs(t, NewError(http.StatusConflict, "different message"), sentinel)
	assert.NotErrorIs(t, NewError(http.StatusBadRequest, "already exists"), sentinel)
}
