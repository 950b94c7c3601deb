package api

import (
	"errors"
	"net/http"

	"badgehub/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// API error codes
const (
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeValidation         = "ERR_VALIDATION"
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeUserExists         = "ERR_USER_EXISTS"
	ErrCodeUserNotFound       = "ERR_USER_NOT_FOUND"
	ErrCodeBadgeNotFound      = "ERR_BADGE_NOT_FOUND"
	ErrCodePayloadTooLarge    = "ERR_PAYLOAD_TOO_LARGE"
	ErrCodeStorageFailure     = "ERR_STORAGE_FAILURE"
)

// APIError is the uniform error response body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse writes a uniform error response.
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails writes an error response with a details payload.
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// InternalError writes a 500 response.
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// InvalidPayload writes a 400 response for unparseable request bodies.
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// RespondError translates a domain error into its HTTP representation.
// Unrecognised errors are logged for operators and surfaced as a generic
// internal error, never with the underlying cause.
func RespondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if ve, ok := apperr.AsValidation(err); ok {
		ErrorResponseWithDetails(c, http.StatusUnprocessableEntity, ErrCodeValidation, "submission failed validation", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, apperr.ErrEmailTaken):
		ErrorResponse(c, http.StatusConflict, ErrCodeUserExists, apperr.ErrEmailTaken.Error())
	case errors.Is(err, apperr.ErrUserNotFound):
		ErrorResponse(c, http.StatusNotFound, ErrCodeUserNotFound, apperr.ErrUserNotFound.Error())
	case errors.Is(err, apperr.ErrBadgeNotFound):
		ErrorResponse(c, http.StatusNotFound, ErrCodeBadgeNotFound, apperr.ErrBadgeNotFound.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, apperr.ErrInvalidCredentials.Error())
	case errors.Is(err, apperr.ErrPayloadTooLarge):
		ErrorResponse(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, apperr.ErrPayloadTooLarge.Error())
	default:
		if _, ok := apperr.AsStorage(err); ok {
			logrus.WithError(err).Error("storage operation failed")
			ErrorResponse(c, http.StatusInternalServerError, ErrCodeStorageFailure, "asset storage operation failed")
			return
		}
		logrus.WithError(err).Error("unexpected internal error")
		InternalError(c, "internal server error")
	}
}
