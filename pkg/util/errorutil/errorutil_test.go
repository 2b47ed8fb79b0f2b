package errorutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/role-gate/pkg/util/errorutil"
)

func TestToDomainError_PassesThroughWrapped(t *testing.T) {
	base := apperrors.NewDomainError("TOKEN_MISSING", "Token required", http.StatusUnauthorized)
	wrapped := fmt.Errorf("restricted: %w", base)

	de := apperrors.ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, "TOKEN_MISSING", de.Code)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "Token required", de.Message)
}

func TestToDomainError_UnknownBecomesInternal(t *testing.T) {
	cause := errors.New("connection refused")

	de := apperrors.ToDomainError(cause)
	require.NotNil(t, de)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "internal server error", de.Message)
	assert.ErrorIs(t, de, cause)
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, apperrors.ToDomainError(nil))
}

func TestNewNotFound(t *testing.T) {
	de := apperrors.ToDomainError(apperrors.NewNotFound("account"))
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, "account not found", de.Message)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

