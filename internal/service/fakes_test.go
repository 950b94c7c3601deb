package service

import (
	"context"
	"fmt"
	"strings"

	"badgehub/internal/apperr"
	"badgehub/internal/entity"
	"badgehub/internal/storage"
)

// fakeRepo is an in-memory Repository honouring the apperr contract.
type fakeRepo struct {
	users      map[uint]*entity.DbUser
	badges     map[uint]*entity.DbBadge
	nextUserID uint
	nextBadge  uint

	createUserErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[uint]*entity.DbUser),
		badges: make(map[uint]*entity.DbBadge),
	}
}

func (r *fakeRepo) CreateUser(_ context.Context, user *entity.DbUser) error {
	if r.createUserErr != nil {
		return r.createUserErr
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperr.ErrEmailTaken
		}
	}
	r.nextUserID++
	user.ID = r.nextUserID
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeRepo) UpdateUser(_ context.Context, id uint, updates entity.UserUpdates) error {
	user, ok := r.users[id]
	if !ok {
		return apperr.ErrUserNotFound
	}
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.FamilyName != nil {
		user.FamilyName = *updates.FamilyName
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.PasswordHash != nil {
		user.PasswordHash = *updates.PasswordHash
	}
	if updates.Role != nil {
		user.Role = *updates.Role
	}
	if updates.CIN != nil {
		user.CIN = *updates.CIN
	}
	if updates.Fonction != nil {
		user.Fonction = *updates.Fonction
	}
	if updates.Etablissement != nil {
		user.Etablissement = *updates.Etablissement
	}
	if updates.ImagePath != nil {
		user.ImagePath = *updates.ImagePath
	}
	return nil
}

func (r *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.DbUser, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.ErrUserNotFound
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*entity.DbUser, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeRepo) ListUsers(_ context.Context, _ *entity.UserQuery) ([]entity.DbUser, *entity.Meta, error) {
	result := make([]entity.DbUser, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, *user)
	}
	return result, &entity.Meta{Page: 1, PageSize: int64(len(result)), Total: int64(len(result))}, nil
}

func (r *fakeRepo) DeleteUser(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return apperr.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeRepo) CreateBadge(_ context.Context, badge *entity.DbBadge) error {
	r.nextBadge++
	badge.ID = r.nextBadge
	clone := *badge
	r.badges[badge.ID] = &clone
	return nil
}

func (r *fakeRepo) GetBadgeByID(_ context.Context, id uint) (*entity.DbBadge, error) {
	badge, ok := r.badges[id]
	if !ok {
		return nil, apperr.ErrBadgeNotFound
	}
	clone := *badge
	return &clone, nil
}

func (r *fakeRepo) ListBadges(_ context.Context) ([]entity.DbBadge, error) {
	result := make([]entity.DbBadge, 0, len(r.badges))
	for _, badge := range r.badges {
		clone := *badge
		if owner, ok := r.users[badge.UserID]; ok {
			ownerClone := *owner
			clone.User = &ownerClone
		}
		result = append(result, clone)
	}
	return result, nil
}

func (r *fakeRepo) DeleteBadge(_ context.Context, id uint) error {
	if _, ok := r.badges[id]; !ok {
		return apperr.ErrBadgeNotFound
	}
	delete(r.badges, id)
	return nil
}

// fakeStorage records saved blobs in memory.
type fakeStorage struct {
	objects map[string][]byte
	saves   int

	saveErr   error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, data []byte, opts storage.SaveOptions) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saves++
	key := fmt.Sprintf("%s/fake-%d.%s", opts.Category, s.saves, opts.Extension)
	s.objects[key] = append([]byte(nil), data...)
	return key, nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.objects[key]
	return ok, nil
}
