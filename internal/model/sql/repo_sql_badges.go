package sql

import (
	"context"
	"errors"
	"fmt"

	"badgehub/internal/apperr"
	"badgehub/internal/entity"

	"gorm.io/gorm"
)

// CreateBadge persists a newly issued badge.
func (r *GormRepository) CreateBadge(ctx context.Context, badge *entity.DbBadge) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if badge == nil {
		return fmt.Errorf("badge is nil")
	}
	return r.db.WithContext(ctx).Create(badge).Error
}

// GetBadgeByID loads a badge by ID.
func (r *GormRepository) GetBadgeByID(ctx context.Context, id uint) (*entity.DbBadge, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, apperr.ErrBadgeNotFound
	}
	var badge entity.DbBadge
	if err := r.db.WithContext(ctx).First(&badge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrBadgeNotFound
		}
		return nil, err
	}
	return &badge, nil
}

// ListBadges returns all badges with their owning user preloaded so callers
// can build the owner projection.
func (r *GormRepository) ListBadges(ctx context.Context) ([]entity.DbBadge, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var badges []entity.DbBadge
	if err := r.db.WithContext(ctx).Preload("User").Order("id DESC").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

// DeleteBadge removes a badge by ID.
func (r *GormRepository) DeleteBadge(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return apperr.ErrBadgeNotFound
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbBadge{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.ErrBadgeNotFound
	}
	return nil
}
