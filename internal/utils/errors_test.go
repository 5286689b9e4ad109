package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	appErr := NewAppError(ErrNotFound, "profile not found", nil)
	assert.Equal(t, "profile not found", appErr.Error())

	wrapped := NewAppError(ErrDatabase, "query failed", errors.New("socket closed"))
	assert.Equal(t, "query failed: socket closed", wrapped.Error())
}

func TestIsErrorCode(t *testing.T) {
	err := NewAppError(ErrDuplicate, "already exists", nil)
	assert.True(t, IsErrorCode(err, ErrDuplicate))
	assert.False(t, IsErrorCode(err, ErrNotFound))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrDuplicate))
}

func TestAppErrorToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, AppErrorToHTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, AppErrorToHTTPStatus(ErrInvalidInput))
	assert.Equal(t, http.StatusConflict, AppErrorToHTTPStatus(ErrDuplicate))
	assert.Equal(t, http.StatusInternalServerError, AppErrorToHTTPStatus(ErrDatabaseUnavailable))
	assert.Equal(t, http.StatusInternalServerError, AppErrorToHTTPStatus("SOMETHING_ELSE"))
}
