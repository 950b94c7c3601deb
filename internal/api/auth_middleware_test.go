package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"badgehub/internal/auth"
	"badgehub/internal/entity"

	"github.com/gin-gonic/gin"
)

func newMiddlewareRouter(t *testing.T) (*gin.Engine, *auth.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr, err := auth.NewManager("test-secret", "badgehub", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	handler := &HTTPHandler{authManager: mgr}

	r := gin.New()
	r.GET("/probe", handler.AuthMiddleware(), func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "role": user.Role})
	})
	return r, mgr
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	r, mgr := newMiddlewareRouter(t)

	token, _, err := mgr.GenerateToken(&entity.DbUser{ID: 7, Email: "user@example.com", Role: entity.UserRoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d (%s)", http.StatusOK, w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejectsBadRequests(t *testing.T) {
	r, _ := newMiddlewareRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "MissingHeader", header: ""},
		{name: "WrongScheme", header: "Basic abc123"},
		{name: "EmptyToken", header: "Bearer "},
		{name: "GarbageToken", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestAuthMiddlewareRejectsForeignToken(t *testing.T) {
	r, _ := newMiddlewareRouter(t)

	other, err := auth.NewManager("different-secret", "badgehub", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	token, _, err := other.GenerateToken(&entity.DbUser{ID: 9, Email: "user@example.com", Role: entity.UserRolePrinter})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}
