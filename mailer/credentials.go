package mailer

import (
	"context"
	"fmt"

	"github.com/vcare/contactmail/secrets"
)

// CredentialsSource resolves the mail account credentials for one invocation.
type CredentialsSource interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticCredentials always returns the same credentials.
type StaticCredentials Credentials

func (s StaticCredentials) Credentials(context.Context) (Credentials, error) {
	return Credentials(s), nil
}

// SecretsCredentials reads the account identity and secret from a secrets provider on every call.
type SecretsCredentials struct {
	provider    secrets.SecretsProvider
	userKey     string
	passwordKey string
}

func NewSecretsCredentials(provider secrets.SecretsProvider, userKey, passwordKey string) *SecretsCredentials {
	return &SecretsCredentials{provider: provider, userKey: userKey, passwordKey: passwordKey}
}

func (s *SecretsCredentials) Credentials(ctx context.Context) (Credentials, error) {
	user, err := s.provider.GetSecret(ctx, s.userKey)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}
	password, err := s.provider.GetSecret(ctx, s.passwordKey)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrMissingCredentials, err)
	}
	return Credentials{User: user, Password: password}, nil
}
