package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const currentUserContextKey = "current-user"

// RequestUser is the authenticated identity attached to the request context.
type RequestUser struct {
	ID    uint
	Email string
	Role  string
}

// AuthMiddleware validates the Bearer token and attaches the caller's
// identity to the context. Role checks are up to the UI; the token only
// proves who the caller is.
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "invalid authorization header format",
			})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims, err := h.authManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("failed to parse jwt token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeSessionExpired,
				Message: "token invalid or expired",
			})
			return
		}

		c.Set(currentUserContextKey, &RequestUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		})
		c.Next()
	}
}

// CurrentUser returns the authenticated user for the request, or nil.
func CurrentUser(c *gin.Context) *RequestUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*RequestUser)
	if !ok {
		return nil
	}
	return user
}
