package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/pkg/apperrors"
)

func respondWith(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, &body
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"university not found", apperrors.ErrUniversityNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate rating", apperrors.ErrDuplicateRating, http.StatusConflict, dto.ErrorCodeConflict},
		{"university exists", apperrors.ErrUniversityAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"rating out of range", apperrors.ErrInvalidRatingValue, http.StatusBadRequest, dto.ErrorCodeInvalidValue},
		{"malformed course code", apperrors.ErrInvalidCourseCode, http.StatusBadRequest, dto.ErrorCodeInvalidValue},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"store outage", apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeStoreUnavailable},
		{"unrecognized", fmt.Errorf("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := respondWith(t, tc.err)
			assert.Equal(t, tc.status, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleAPIError_WrappedErrorsStillMatch(t *testing.T) {
	status, body := respondWith(t, fmt.Errorf("%w: value for attribute 3 must be between 1 and 5", apperrors.ErrInvalidRatingValue))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, dto.ErrorCodeInvalidValue, body.Error.Code)
}

func TestHandleAPIError_ConflictHelperMapsToConflict(t *testing.T) {
	status, body := respondWith(t, apperrors.NewConflictError("professor with this email already exists"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
	assert.Equal(t, "professor with this email already exists", body.Error.Message)
}
