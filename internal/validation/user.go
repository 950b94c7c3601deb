// Package validation checks submitted user fields against the identity
// rules. It is pure: no storage, no network, safe to call standalone.
package validation

import (
	"strings"

	"badgehub/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Result collects the outcome of validating a user submission. IsValid is
// true exactly when FieldErrors is empty; each field carries at most one
// message.
type Result struct {
	FieldErrors map[string]string
	IsValid     bool
}

// ValidateUser applies the identity rules to a candidate. Fields are
// evaluated independently so all errors are collected in one pass; only the
// CIN checks are ordered, stopping at the first failed check.
func ValidateUser(candidate *entity.UserCandidate) Result {
	errs := make(map[string]string)
	if candidate == nil {
		candidate = &entity.UserCandidate{}
	}

	if isBlank(candidate.Name) {
		errs["name"] = "Name field is required"
	}
	if isBlank(candidate.FamilyName) {
		errs["familyName"] = "Family Name field is required"
	}

	email := strings.TrimSpace(candidate.Email)
	if email == "" {
		errs["email"] = "Email field is required"
	} else if validate.Var(email, "email") != nil {
		errs["email"] = "Email is invalid"
	}

	if isBlank(candidate.Password) {
		errs["password"] = "Password field is required"
	}
	if isBlank(candidate.Role) {
		errs["role"] = "Role field is required"
	}

	if msg := validateCIN(candidate.CIN); msg != "" {
		errs["CIN"] = msg
	}

	if isBlank(candidate.Fonction) {
		errs["fonction"] = "Fonction field is required"
	}
	if isBlank(candidate.Etablissement) {
		errs["etablissement"] = "Etablissement field is required"
	}

	// Presence only: the file content is checked by the asset manager.
	if candidate.Image == nil {
		errs["image"] = "Image field is required"
	}

	return Result{FieldErrors: errs, IsValid: len(errs) == 0}
}

// validateCIN runs the CIN checks in their fixed order and returns the
// message of the first failed check, or "" when the CIN is valid.
func validateCIN(cin string) string {
	cin = strings.TrimSpace(cin)
	if cin == "" {
		return "CIN field is required"
	}
	if !isDigits(cin) {
		return "CIN must be a number"
	}
	if len(cin) != 8 {
		return "CIN must be 8 digits long"
	}
	if cin[0] != '0' && cin[0] != '1' {
		return "CIN must start with 1 or 0"
	}
	return ""
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func isDigits(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
