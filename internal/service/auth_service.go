package service

import (
	"context"
	"errors"
	"time"

	"badgehub/internal/apperr"
	"badgehub/internal/auth"
	"badgehub/internal/entity"
	"badgehub/internal/model"

	"github.com/sirupsen/logrus"
)

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	repo   model.Repository
	tokens *auth.Manager
}

// NewAuthService builds an AuthService around a repository and JWT manager.
func NewAuthService(repo model.Repository, tokens *auth.Manager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// LoginResult carries a signed session token and the role-based redirect
// hint for the UI router.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Redirect  string
	User      *entity.DbUser
}

// Login checks the email/password pair and returns a signed token. Every
// failure path yields the same apperr.ErrInvalidCredentials so callers
// cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		logrus.WithField("email", email).Warn("password verification failed")
		return nil, apperr.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Redirect:  auth.RedirectForRole(user.Role),
		User:      user,
	}, nil
}
