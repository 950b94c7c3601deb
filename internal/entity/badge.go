package entity

import "time"

// DbBadge represents an issued access badge. Badges are immutable after
// issuance; revocation removes the record.
type DbBadge struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	User      *DbUser   `gorm:"foreignKey:UserID" json:"-"`
	CIN       string    `gorm:"column:cin;type:varchar(8);not null" json:"cin"`
	Validity  time.Time `gorm:"column:validity" json:"validity"`
	Zone      string    `gorm:"column:zone;type:varchar(100)" json:"zone"`
	Type      string    `gorm:"column:type;type:varchar(100)" json:"type"`
	QRCode    string    `gorm:"column:qr_code;type:varchar(64);index;not null" json:"qr_code"`
}

// TableName overrides default pluralised name.
func (DbBadge) TableName() string {
	return "badges"
}

// BadgeOwner is the whitelisted projection of the badge owner exposed on
// listings. It deliberately omits the owner's id, email and credentials.
type BadgeOwner struct {
	Name          string `json:"name"`
	FamilyName    string `json:"family_name"`
	Fonction      string `json:"fonction"`
	Etablissement string `json:"etablissement"`
}

// BadgeItem is a badge joined with its owner projection.
type BadgeItem struct {
	ID        uint        `json:"id"`
	CIN       string      `json:"cin"`
	Validity  time.Time   `json:"validity"`
	Zone      string      `json:"zone"`
	Type      string      `json:"type"`
	QRCode    string      `json:"qr_code"`
	CreatedAt time.Time   `json:"created_at"`
	User      *BadgeOwner `json:"user,omitempty"`
}

// BadgeCreateRequest is the payload for issuing a badge.
type BadgeCreateRequest struct {
	UserID   uint      `json:"userId" binding:"required"`
	CIN      string    `json:"CIN"`
	Validity time.Time `json:"validity"`
	Zone     string    `json:"zone"`
	Type     string    `json:"type"`
}

// BadgeListResponse is the response for listing badges.
type BadgeListResponse struct {
	Badges []BadgeItem `json:"badges"`
}
