package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courator/courator/internal/app/models/dto"
	"github.com/courator/courator/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the HTTP error taxonomy:
// missing resources become 404, duplicates 409, rejected input 400,
// authentication failures 401, permission failures 403 and persistence
// outages 503. Anything unrecognized is a 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUniversityNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrAccountNotFound,
		apperrors.ErrAttributeNotFound,
		apperrors.ErrProfessorNotFound,
		apperrors.ErrTANotFound):
		respond(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrDuplicateRating):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, "Course already rated by this account"))

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrUniversityAlreadyExists,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrAttributeAlreadyExists):
		respond(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	case apperrors.Is(err, apperrors.ErrInvalidRatingValue,
		apperrors.ErrInvalidCourseCode):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidValue, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidEmail):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidEmail, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidPassword):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidPassword, err.Error()))

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrUnauthorized):
		respond(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))

	case errors.Is(err, apperrors.ErrStoreUnavailable):
		respond(c, http.StatusServiceUnavailable, dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "Rating store unavailable"))

	default:
		respond(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.NewErrorResponse(detail))
}
