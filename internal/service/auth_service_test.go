package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"badgehub/internal/apperr"
	"badgehub/internal/auth"
	"badgehub/internal/entity"
)

func newTestAuthService(t *testing.T, repo *fakeRepo) *AuthService {
	t.Helper()
	mgr, err := auth.NewManager("test-secret", "badgehub", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	return NewAuthService(repo, mgr)
}

func seedUser(t *testing.T, repo *fakeRepo, email, password, role string) *entity.DbUser {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	user := &entity.DbUser{
		Name:         "Amine",
		FamilyName:   "Trabelsi",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CIN:          "01234567",
	}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error seeding user: %v", err)
	}
	return user
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestAuthService(t, repo)
	seedUser(t, repo, "admin@example.com", "S3curePass!", entity.UserRoleAdmin)

	result, err := svc.Login(context.Background(), "admin@example.com", "S3curePass!")
	if err != nil {
		t.Fatalf("unexpected error logging in: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}
	if result.ExpiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry")
	}
	if result.Redirect != auth.RedirectBadges {
		t.Fatalf("expected admin redirect %q, got %q", auth.RedirectBadges, result.Redirect)
	}
	if result.User == nil || result.User.Email != "admin@example.com" {
		t.Fatal("expected the authenticated user to be returned")
	}
}

func TestAuthServiceLoginRedirects(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		expected string
	}{
		{name: "Admin", role: entity.UserRoleAdmin, expected: auth.RedirectBadges},
		{name: "Responsable", role: entity.UserRoleResponsable, expected: auth.RedirectResponsable},
		{name: "Printer", role: entity.UserRolePrinter, expected: auth.RedirectPrint},
		{name: "Other", role: "visitor", expected: auth.RedirectHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestAuthService(t, repo)
			seedUser(t, repo, "user@example.com", "S3curePass!", tt.role)

			result, err := svc.Login(context.Background(), "user@example.com", "S3curePass!")
			if err != nil {
				t.Fatalf("unexpected error logging in: %v", err)
			}
			if result.Redirect != tt.expected {
				t.Errorf("expected redirect %q, got %q", tt.expected, result.Redirect)
			}
		})
	}
}

func TestAuthServiceLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestAuthService(t, repo)
	seedUser(t, repo, "known@example.com", "S3curePass!", entity.UserRoleAdmin)

	_, unknownErr := svc.Login(context.Background(), "unknown@example.com", "whatever")
	_, wrongPassErr := svc.Login(context.Background(), "known@example.com", "wrong")

	if !errors.Is(unknownErr, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, apperr.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatal("expected identical error messages for both failure modes")
	}
}
