package api

import (
	"testing"

	"badgehub/internal/config"
)

func TestNewHTTPHandlerRequiresJWTSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{name: "Unset", secret: ""},
		{name: "Whitespace", secret: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{JWTSecret: tt.secret}
			if _, err := NewHTTPHandler(cfg, nil, nil); err == nil {
				t.Fatal("expected handler construction to fail without a JWT secret")
			}
		})
	}
}

func TestNewHTTPHandlerAcceptsConfiguredSecret(t *testing.T) {
	cfg := config.Config{JWTSecret: "configured-secret"}
	handler, err := NewHTTPHandler(cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error building handler: %v", err)
	}
	if handler == nil {
		t.Fatal("expected a handler")
	}
}
