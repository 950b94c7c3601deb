package entity

import "time"

const (
	UserRoleAdmin       = "admin"
	UserRoleResponsable = "responsable"
	UserRolePrinter     = "printer"
)

// DbUser represents a persisted personnel account.
type DbUser struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Name          string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	FamilyName    string    `gorm:"column:family_name;type:varchar(255);not null" json:"family_name"`
	Email         string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash  string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role          string    `gorm:"column:role;type:varchar(50);index;not null" json:"role"`
	CIN           string    `gorm:"column:cin;type:varchar(8);index;not null" json:"cin"`
	Fonction      string    `gorm:"column:fonction;type:varchar(255);not null" json:"fonction"`
	Etablissement string    `gorm:"column:etablissement;type:varchar(255);not null" json:"etablissement"`
	ImagePath     string    `gorm:"column:image_path;type:varchar(512);not null" json:"-"`
}

// TableName overrides default pluralised name.
func (DbUser) TableName() string {
	return "users"
}

// ImageUpload carries the raw bytes of an uploaded profile image together
// with the filename the client supplied.
type ImageUpload struct {
	Data     []byte
	Filename string
}

// UserCandidate is the typed submission for creating or replacing a user.
// Image is nil when no file was uploaded.
type UserCandidate struct {
	Name          string
	FamilyName    string
	Email         string
	Password      string
	Role          string
	CIN           string
	Fonction      string
	Etablissement string
	Image         *ImageUpload
}

// UserSummary is the user representation returned to clients. Image holds a
// public URL for the stored profile image, never the raw storage key.
type UserSummary struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	FamilyName    string    `json:"family_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CIN           string    `json:"cin"`
	Fonction      string    `json:"fonction"`
	Etablissement string    `json:"etablissement"`
	Image         string    `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserQuery supports listing users with pagination.
type UserQuery struct {
	BaseParams
	Role    string `json:"role" form:"role" query:"role"`
	Keyword string `json:"keyword" form:"keyword" query:"keyword"`
}

// UserListResponse is the response for listing users.
type UserListResponse struct {
	Users []UserSummary `json:"users"`
	Meta  *Meta         `json:"meta"`
}

type AuthLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login. Redirect is the
// role-dependent destination hint for the UI router, not an authorization
// decision.
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Redirect  string      `json:"redirect"`
	User      UserSummary `json:"user"`
}
