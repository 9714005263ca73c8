package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/vcare/contactmail/config"
)

func TestEnvSecretsProvider(t *testing.T) {
	ctx := context.Background()
	t.Setenv("EMAIL_USER", "vcare@example.com")
	t.Setenv("VCARE_EMAIL_PASS", "prefixed-pass")

	t.Run("WithoutPrefix", func(t *testing.T) {
		provider := NewEnvSecretsProvider("")

		value, err := provider.GetSecret(ctx, "EMAIL_USER")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if value != "vcare@example.com" {
			t.Fatalf("Expected 'vcare@example.com', got '%s'", value)
		}

		_, err = provider.GetSecret(ctx, "NON_EXISTENT")
		if !errors.Is(err, ErrSecretNotFound) {
			t.Fatalf("Expected ErrSecretNotFound, got %v", err)
		}
	})

	t.Run("WithPrefix", func(t *testing.T) {
		provider := NewEnvSecretsProvider("VCARE_")

		value, err := provider.GetSecret(ctx, "EMAIL_PASS")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if value != "prefixed-pass" {
			t.Fatalf("Expected 'prefixed-pass', got '%s'", value)
		}

		// Falls back to the unprefixed name
		value, err = provider.GetSecret(ctx, "EMAIL_USER")
		if err != nil {
			t.Fatalf("Expected fallback to succeed, got %v", err)
		}
		if value != "vcare@example.com" {
			t.Fatalf("Expected 'vcare@example.com', got '%s'", value)
		}
	})

	t.Run("ReadsFreshValues", func(t *testing.T) {
		provider := NewEnvSecretsProvider("")
		t.Setenv("EMAIL_USER", "rotated@example.com")
		value, err := provider.GetSecret(ctx, "EMAIL_USER")
		if err != nil || value != "rotated@example.com" {
			t.Fatalf("Expected rotated value, got %q (%v)", value, err)
		}
	})

	t.Run("Close", func(t *testing.T) {
		if err := NewEnvSecretsProvider("").Close(); err != nil {
			t.Fatalf("Expected no error on close, got %v", err)
		}
	})
}

func TestNewSecretsProvider(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.SecretsConfig
		wantEnv bool
		wantErr bool
	}{
		{name: "nil config", cfg: nil, wantEnv: true},
		{name: "empty driver", cfg: &config.SecretsConfig{}, wantEnv: true},
		{name: "env driver", cfg: &config.SecretsConfig{Driver: "env", Prefix: "X_"}, wantEnv: true},
		{name: "aws without region", cfg: &config.SecretsConfig{Driver: "aws"}, wantErr: true},
		{name: "unknown driver", cfg: &config.SecretsConfig{Driver: "vault"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewSecretsProvider(ctx, tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if _, ok := provider.(*EnvSecretsProvider); ok != tt.wantEnv {
				t.Fatalf("Expected env provider=%v, got %T", tt.wantEnv, provider)
			}
		})
	}
}
