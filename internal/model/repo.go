package model

import (
	"context"

	"badgehub/internal/entity"
)

// Repository defines the persistence operations for users and badges.
//
// Implementations return the apperr sentinels (ErrUserNotFound,
// ErrBadgeNotFound, ErrEmailTaken) for the corresponding conditions so the
// service layer never inspects driver errors. The email uniqueness source of
// truth is the database unique index; application-level checks are advisory.
type Repository interface {
	// Users
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	ListUsers(ctx context.Context, params *entity.UserQuery) ([]entity.DbUser, *entity.Meta, error)
	DeleteUser(ctx context.Context, id uint) error

	// Badges
	CreateBadge(ctx context.Context, badge *entity.DbBadge) error
	GetBadgeByID(ctx context.Context, id uint) (*entity.DbBadge, error)
	ListBadges(ctx context.Context) ([]entity.DbBadge, error)
	DeleteBadge(ctx context.Context, id uint) error
}
