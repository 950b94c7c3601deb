// Package service holds the domain orchestration between the HTTP boundary,
// the repository and the asset storage. All dependencies are injected at
// construction so the services can run against test doubles.
package service

import (
	"context"
	"errors"
	"fmt"

	"badgehub/internal/apperr"
	"badgehub/internal/auth"
	"badgehub/internal/entity"
	"badgehub/internal/model"
	"badgehub/internal/storage"
	"badgehub/internal/validation"

	"github.com/sirupsen/logrus"
)

const imageCategory = "avatars"

// UserService owns the user lifecycle: validated creation, full-record
// updates and deletion, each tied to the profile-image asset lifecycle.
type UserService struct {
	repo           model.Repository
	store          storage.Storage
	maxUploadBytes int64
}

// NewUserService builds a UserService. maxUploadBytes bounds accepted image
// payloads; zero or negative falls back to 5 MiB.
func NewUserService(repo model.Repository, store storage.Storage, maxUploadBytes int64) *UserService {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 5 << 20
	}
	return &UserService{repo: repo, store: store, maxUploadBytes: maxUploadBytes}
}

// Create validates the candidate, enforces email uniqueness, hashes the
// password and persists the record together with its image asset. Nothing is
// written when validation or the uniqueness check fails.
func (s *UserService) Create(ctx context.Context, candidate *entity.UserCandidate) (*entity.DbUser, error) {
	result := validation.ValidateUser(candidate)
	if !result.IsValid {
		return nil, &apperr.ValidationError{Fields: result.FieldErrors}
	}

	if int64(len(candidate.Image.Data)) > s.maxUploadBytes {
		return nil, apperr.ErrPayloadTooLarge
	}

	// Advisory fast path; the unique index on email is the real guarantee
	// and CreateUser reports the authoritative conflict.
	if _, err := s.repo.GetUserByEmail(ctx, candidate.Email); err == nil {
		return nil, apperr.ErrEmailTaken
	} else if !errors.Is(err, apperr.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := auth.HashPassword(candidate.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	imagePath, err := s.store.Save(ctx, candidate.Image.Data, storage.SaveOptions{
		Category:  imageCategory,
		Extension: storage.ExtensionOf(candidate.Image.Filename),
	})
	if err != nil {
		return nil, &apperr.StorageError{Op: "save", Path: candidate.Image.Filename, Err: err}
	}

	user := &entity.DbUser{
		Name:          candidate.Name,
		FamilyName:    candidate.FamilyName,
		Email:         candidate.Email,
		PasswordHash:  hash,
		Role:          candidate.Role,
		CIN:           candidate.CIN,
		Fonction:      candidate.Fonction,
		Etablissement: candidate.Etablissement,
		ImagePath:     imagePath,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// The asset was written before the insert failed; remove the orphan.
		if cleanupErr := s.store.Delete(ctx, imagePath); cleanupErr != nil {
			logrus.WithError(cleanupErr).WithField("path", imagePath).Warn("failed to remove orphaned image")
		}
		return nil, err
	}

	return user, nil
}

// Update replaces every identity field of an existing user with the
// submitted values. A supplied password is always rehashed before
// persistence; an empty password keeps the stored hash. A supplied image
// replaces the previous asset, whose deletion is best-effort.
func (s *UserService) Update(ctx context.Context, id uint, candidate *entity.UserCandidate) (*entity.DbUser, error) {
	existing, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := entity.UserUpdates{
		Name:          &candidate.Name,
		FamilyName:    &candidate.FamilyName,
		Email:         &candidate.Email,
		Role:          &candidate.Role,
		CIN:           &candidate.CIN,
		Fonction:      &candidate.Fonction,
		Etablissement: &candidate.Etablissement,
	}

	if candidate.Password != "" {
		hash, err := auth.HashPassword(candidate.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates.PasswordHash = &hash
	}

	if candidate.Image != nil {
		if int64(len(candidate.Image.Data)) > s.maxUploadBytes {
			return nil, apperr.ErrPayloadTooLarge
		}
		newPath, err := s.store.Save(ctx, candidate.Image.Data, storage.SaveOptions{
			Category:  imageCategory,
			Extension: storage.ExtensionOf(candidate.Image.Filename),
		})
		if err != nil {
			return nil, &apperr.StorageError{Op: "save", Path: candidate.Image.Filename, Err: err}
		}
		if existing.ImagePath != "" {
			if err := s.store.Delete(ctx, existing.ImagePath); err != nil {
				logrus.WithError(err).WithField("path", existing.ImagePath).Warn("failed to delete replaced image")
			}
		}
		updates.ImagePath = &newPath
	}

	if err := s.repo.UpdateUser(ctx, id, updates); err != nil {
		return nil, err
	}

	return s.repo.GetUserByID(ctx, id)
}

// Delete removes the user record and its image asset. An already-missing
// asset is fine; a removal that genuinely fails is reported as a storage
// error even though the record is already gone.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	if user.ImagePath != "" {
		if err := s.store.Delete(ctx, user.ImagePath); err != nil {
			logrus.WithError(err).WithField("path", user.ImagePath).Error("failed to delete user image")
			return &apperr.StorageError{Op: "delete", Path: user.ImagePath, Err: err}
		}
	}

	return nil
}

// Get loads a single user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*entity.DbUser, error) {
	return s.repo.GetUserByID(ctx, id)
}

// List returns paginated users.
func (s *UserService) List(ctx context.Context, query *entity.UserQuery) ([]entity.DbUser, *entity.Meta, error) {
	return s.repo.ListUsers(ctx, query)
}
