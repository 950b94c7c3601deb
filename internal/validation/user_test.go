package validation

import (
	"testing"

	"badgehub/internal/entity"
)

func validCandidate() *entity.UserCandidate {
	return &entity.UserCandidate{
		Name:          "Amine",
		FamilyName:    "Trabelsi",
		Email:         "amine@example.com",
		Password:      "S3curePass!",
		Role:          entity.UserRoleAdmin,
		CIN:           "01234567",
		Fonction:      "Agent",
		Etablissement: "Aeroport Tunis-Carthage",
		Image:         &entity.ImageUpload{Data: []byte{0x89}, Filename: "photo.png"},
	}
}

func TestValidateUserAcceptsCompleteCandidate(t *testing.T) {
	result := ValidateUser(validCandidate())
	if !result.IsValid {
		t.Fatalf("expected valid candidate, got errors: %v", result.FieldErrors)
	}
	if len(result.FieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", result.FieldErrors)
	}
}

func TestValidateUserRequiredFields(t *testing.T) {
	result := ValidateUser(&entity.UserCandidate{})
	if result.IsValid {
		t.Fatal("expected empty candidate to be invalid")
	}

	expected := map[string]string{
		"name":          "Name field is required",
		"familyName":    "Family Name field is required",
		"email":         "Email field is required",
		"password":      "Password field is required",
		"role":          "Role field is required",
		"CIN":           "CIN field is required",
		"fonction":      "Fonction field is required",
		"etablissement": "Etablissement field is required",
		"image":         "Image field is required",
	}

	if len(result.FieldErrors) != len(expected) {
		t.Fatalf("expected %d field errors, got %d: %v", len(expected), len(result.FieldErrors), result.FieldErrors)
	}
	for field, message := range expected {
		if got := result.FieldErrors[field]; got != message {
			t.Errorf("field %s: expected %q, got %q", field, message, got)
		}
	}
}

func TestValidateUserWhitespaceOnlyFields(t *testing.T) {
	candidate := validCandidate()
	candidate.Name = "   "
	candidate.Fonction = "\t"

	result := ValidateUser(candidate)
	if result.IsValid {
		t.Fatal("expected whitespace-only fields to be invalid")
	}
	if result.FieldErrors["name"] != "Name field is required" {
		t.Errorf("unexpected name error: %q", result.FieldErrors["name"])
	}
	if result.FieldErrors["fonction"] != "Fonction field is required" {
		t.Errorf("unexpected fonction error: %q", result.FieldErrors["fonction"])
	}
}

func TestValidateUserEmailFormat(t *testing.T) {
	candidate := validCandidate()
	candidate.Email = "not-an-email"

	result := ValidateUser(candidate)
	if result.IsValid {
		t.Fatal("expected malformed email to be invalid")
	}
	if got := result.FieldErrors["email"]; got != "Email is invalid" {
		t.Errorf("expected email format error, got %q", got)
	}
}

func TestValidateCIN(t *testing.T) {
	tests := []struct {
		name     string
		cin      string
		expected string
	}{
		{name: "Valid leading zero", cin: "01234567", expected: ""},
		{name: "Valid leading one", cin: "12345670", expected: ""},
		{name: "Empty", cin: "", expected: "CIN field is required"},
		{name: "NonNumeric", cin: "0abcdefg", expected: "CIN must be a number"},
		{name: "TooShort", cin: "0123456", expected: "CIN must be 8 digits long"},
		{name: "TooLong", cin: "012345678", expected: "CIN must be 8 digits long"},
		{name: "ValidAscendingDigits", cin: "12345678", expected: ""},
		{name: "StartsWithTwo", cin: "21234567", expected: "CIN must start with 1 or 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateCIN(tt.cin); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestValidateCINOrderNumericBeforeLength(t *testing.T) {
	// Both checks fail here; the numeric check must win.
	if got := validateCIN("abc"); got != "CIN must be a number" {
		t.Fatalf("expected numeric error first, got %q", got)
	}
}

func TestValidateUserNilCandidate(t *testing.T) {
	result := ValidateUser(nil)
	if result.IsValid {
		t.Fatal("expected nil candidate to be invalid")
	}
	if result.FieldErrors["name"] == "" {
		t.Fatal("expected required-field errors for nil candidate")
	}
}
