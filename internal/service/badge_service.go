package service

import (
	"context"
	"fmt"
	"strings"

	"badgehub/internal/entity"
	"badgehub/internal/model"

	"github.com/google/uuid"
)

// BadgeService owns badge issuance, listing and revocation. Badges are never
// mutated after issuance.
type BadgeService struct {
	repo model.Repository
}

// NewBadgeService builds a BadgeService.
func NewBadgeService(repo model.Repository) *BadgeService {
	return &BadgeService{repo: repo}
}

// Issue creates a badge for an existing user. The QR code is a 128-bit
// random token; collisions are negligible and not checked.
func (s *BadgeService) Issue(ctx context.Context, req *entity.BadgeCreateRequest) (*entity.DbBadge, error) {
	user, err := s.repo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	cin := strings.TrimSpace(req.CIN)
	if cin == "" {
		// Echo the identity number the user holds at issuance time.
		cin = user.CIN
	}

	badge := &entity.DbBadge{
		UserID:   user.ID,
		CIN:      cin,
		Validity: req.Validity,
		Zone:     req.Zone,
		Type:     req.Type,
		QRCode:   newQRCode(),
	}

	if err := s.repo.CreateBadge(ctx, badge); err != nil {
		return nil, fmt.Errorf("create badge: %w", err)
	}

	return badge, nil
}

// List returns all badges joined with the whitelisted owner projection. The
// owner's id, email and credentials are never included; a badge whose owner
// was deleted is listed without an owner block.
func (s *BadgeService) List(ctx context.Context) ([]entity.BadgeItem, error) {
	badges, err := s.repo.ListBadges(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.BadgeItem, 0, len(badges))
	for i := range badges {
		items = append(items, makeBadgeItem(&badges[i]))
	}
	return items, nil
}

// Revoke permanently removes a badge.
func (s *BadgeService) Revoke(ctx context.Context, id uint) error {
	return s.repo.DeleteBadge(ctx, id)
}

func makeBadgeItem(badge *entity.DbBadge) entity.BadgeItem {
	item := entity.BadgeItem{
		ID:        badge.ID,
		CIN:       badge.CIN,
		Validity:  badge.Validity,
		Zone:      badge.Zone,
		Type:      badge.Type,
		QRCode:    badge.QRCode,
		CreatedAt: badge.CreatedAt,
	}
	if badge.User != nil {
		item.User = &entity.BadgeOwner{
			Name:          badge.User.Name,
			FamilyName:    badge.User.FamilyName,
			Fonction:      badge.User.Fonction,
			Etablissement: badge.User.Etablissement,
		}
	}
	return item
}

func newQRCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
