package api

import (
	"strings"
	"time"

	"badgehub/internal/auth"
	"badgehub/internal/config"
	"badgehub/internal/entity"
	"badgehub/internal/model"
	"badgehub/internal/service"
	"badgehub/internal/storage"
)

// HTTPHandler bundles the services behind the HTTP routes.
type HTTPHandler struct {
	cfg               config.Config
	users             *service.UserService
	badges            *service.BadgeService
	authService       *service.AuthService
	authManager       *auth.Manager
	storagePublicBase string
}

// NewHTTPHandler wires the services from their injected dependencies.
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	return &HTTPHandler{
		cfg:               cfg,
		users:             service.NewUserService(repo, store, cfg.UploadMaxBytes),
		badges:            service.NewBadgeService(repo),
		authService:       service.NewAuthService(repo, authManager),
		authManager:       authManager,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
	}, nil
}

// normalisePublicBase normalises the public URL base path.
func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/uploads"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// publicURL converts a storage key into a URL a client can fetch.
func (h *HTTPHandler) publicURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return h.storagePublicBase + "/" + strings.TrimLeft(trimmed, "/")
}

func (h *HTTPHandler) makeUserSummary(user *entity.DbUser) entity.UserSummary {
	if user == nil {
		return entity.UserSummary{}
	}
	return entity.UserSummary{
		ID:            user.ID,
		Name:          user.Name,
		FamilyName:    user.FamilyName,
		Email:         user.Email,
		Role:          user.Role,
		CIN:           user.CIN,
		Fonction:      user.Fonction,
		Etablissement: user.Etablissement,
		Image:         h.publicURL(user.ImagePath),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
