package api

import (
	"context"
	"net/http"
	"time"

	"badgehub/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *HTTPHandler) CreateBadge(c *gin.Context) {
	var req entity.BadgeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	badge, err := h.badges.Issue(ctx, &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, badge)
}

func (h *HTTPHandler) ListBadges(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.badges.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list badges")
		InternalError(c, "failed to load badges")
		return
	}

	c.JSON(http.StatusOK, entity.BadgeListResponse{Badges: items})
}

func (h *HTTPHandler) DeleteBadge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.badges.Revoke(ctx, id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Badge deleted successfully"})
}
