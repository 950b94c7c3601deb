package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"badgehub/internal/entity"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) Login(c *gin.Context) {
	var req entity.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := req.Password

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result, err := h.authService.Login(ctx, email, password)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.AuthResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Redirect:  result.Redirect,
		User:      h.makeUserSummary(result.User),
	})
}
