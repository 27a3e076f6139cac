package surveymonkey

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeClassification(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"1000", ErrBadRequest},
		{"1004", ErrBadRequest},
		{"1010", ErrAuthorization},
		{"1013", ErrAuthorization},
		{"1014", ErrPermission},
		{"1018", ErrPermission},
		{"1020", ErrNotFound},
		{"1025", ErrConflict},
		{"1026", ErrConflict},
		{"1030", ErrEntityTooLarge},
		{"1040", ErrRateLimited},
		{"1050", ErrInternal},
		{"1051", ErrInternal},
		{"1052", ErrUserSoftDeleted},
		{"1053", ErrUserDeleted},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := parseAPIError(http.StatusBadRequest, []byte(`{"error":"`+tt.code+`","message":"details"}`))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, "details", apiErr.Message)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseAPIErrorUnknownBody(t *testing.T) {
	err := parseAPIError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "status 502")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestAPIErrorHelpers(t *testing.T) {
	t.Run("not found by code", func(t *testing.T) {
		err := &APIError{StatusCode: 404, Code: "1020", Message: "gone"}
		assert.True(t, err.IsNotFound())
		assert.False(t, err.IsAuthError())
	})

	t.Run("not found by status only", func(t *testing.T) {
		err := &APIError{StatusCode: 404}
		assert.True(t, err.IsNotFound())
	})

	t.Run("auth error", func(t *testing.T) {
		err := &APIError{StatusCode: 401, Code: "1010", Message: "revoked"}
		assert.True(t, err.IsAuthError())
		assert.True(t, errors.Is(err, ErrAuthorization))
	})

	t.Run("rate limited", func(t *testing.T) {
		err := &APIError{StatusCode: 429, Code: "1040", Message: "slow down"}
		assert.True(t, err.IsRateLimited())
	})
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 403, Code: "1014", Message: "missing scope"}
	assert.Equal(t, "surveymonkey API error 1014: missing scope (status 403)", err.Error())
}
