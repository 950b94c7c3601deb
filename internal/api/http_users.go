package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"badgehub/internal/apperr"
	"badgehub/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// formCandidate builds the typed submission from a multipart form. The image
// part is optional here; the validator decides whether its absence is an
// error for the operation at hand.
func (h *HTTPHandler) formCandidate(c *gin.Context) (*entity.UserCandidate, error) {
	candidate := &entity.UserCandidate{
		Name:          strings.TrimSpace(c.PostForm("name")),
		FamilyName:    strings.TrimSpace(c.PostForm("familyName")),
		Email:         strings.ToLower(strings.TrimSpace(c.PostForm("email"))),
		Password:      c.PostForm("password"),
		Role:          strings.TrimSpace(c.PostForm("role")),
		CIN:           strings.TrimSpace(c.PostForm("CIN")),
		Fonction:      strings.TrimSpace(c.PostForm("fonction")),
		Etablissement: strings.TrimSpace(c.PostForm("etablissement")),
	}

	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return candidate, nil
		}
		return nil, err
	}

	if header.Size > h.cfg.UploadMaxBytes && h.cfg.UploadMaxBytes > 0 {
		return nil, apperr.ErrPayloadTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	candidate.Image = &entity.ImageUpload{Data: data, Filename: header.Filename}
	return candidate, nil
}

func (h *HTTPHandler) CreateUser(c *gin.Context) {
	candidate, err := h.formCandidate(c)
	if err != nil {
		if errors.Is(err, apperr.ErrPayloadTooLarge) {
			RespondError(c, err)
			return
		}
		logrus.WithError(err).Warn("failed to parse user form")
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.Create(ctx, candidate)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.makeUserSummary(user))
}

func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	candidate, err := h.formCandidate(c)
	if err != nil {
		if errors.Is(err, apperr.ErrPayloadTooLarge) {
			RespondError(c, err)
			return
		}
		logrus.WithError(err).Warn("failed to parse user form")
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.Update(ctx, id, candidate)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.makeUserSummary(user))
}

func (h *HTTPHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.Get(ctx, id)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.makeUserSummary(user))
}

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	var query entity.UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}
	if query.PageSize > 100 {
		query.PageSize = 100
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, meta, err := h.users.List(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		InternalError(c, "failed to load users")
		return
	}

	response := entity.UserListResponse{
		Users: make([]entity.UserSummary, 0, len(users)),
		Meta:  meta,
	}
	for idx := range users {
		response.Users = append(response.Users, h.makeUserSummary(&users[idx]))
	}

	c.JSON(http.StatusOK, response)
}

func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.users.Delete(ctx, id); err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// parseID reads the :id path parameter and writes the error response itself
// when the value is unusable.
func parseID(c *gin.Context) (uint, bool) {
	idValue := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idValue, 10, 64)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
