package apperrors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/rotalivre/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorEnvelope(t *testing.T) {
	appErr := apperrors.NewConflictError("Email já está em uso")

	body, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"Email já está em uso"}`, string(body))
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestAppErrorUnwrapsSentinel(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", apperrors.NewBadRequestError("Latitude and longitude required"))

	var appErr *apperrors.AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.True(t, errors.Is(wrapped, apperrors.ErrValidation))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestInternalServerErrorHidesCause(t *testing.T) {
	appErr := apperrors.NewInternalServerError("Erro interno do servidor")
	body, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "sql")
	assert.Nil(t, errors.Unwrap(appErr))
}
