package entity

// UserUpdates lists the user columns an update may overwrite. Nil fields are
// left untouched.
type UserUpdates struct {
	Name          *string
	FamilyName    *string
	Email         *string
	PasswordHash  *string
	Role          *string
	CIN           *string
	Fonction      *string
	Etablissement *string
	ImagePath     *string
}

// ToMap converts to a GORM updates map.
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.FamilyName != nil {
		updates["family_name"] = *u.FamilyName
	}
	if u.Email != nil {
		updates["email"] = *u.Email
	}
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	if u.Role != nil {
		updates["role"] = *u.Role
	}
	if u.CIN != nil {
		updates["cin"] = *u.CIN
	}
	if u.Fonction != nil {
		updates["fonction"] = *u.Fonction
	}
	if u.Etablissement != nil {
		updates["etablissement"] = *u.Etablissement
	}
	if u.ImagePath != nil {
		updates["image_path"] = *u.ImagePath
	}
	return updates
}

// IsEmpty reports whether no field is set.
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
