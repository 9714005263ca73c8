package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/mailer"
	"github.com/vcare/contactmail/utils"
)

// Sender resolves credentials, composes both contact emails and sends them
// concurrently. It reports success only when both were sent.
type Sender struct {
	cfg          config.MailConfig
	composer     *Composer
	credentials  mailer.CredentialsSource
	newTransport mailer.TransportFactory
}

// NewSender returns a Sender. A nil factory means mailer.New.
func NewSender(cfg config.MailConfig, credentials mailer.CredentialsSource, newTransport mailer.TransportFactory) *Sender {
	if newTransport == nil {
		newTransport = mailer.New
	}
	return &Sender{
		cfg:          cfg,
		composer:     NewComposer(cfg),
		credentials:  credentials,
		newTransport: newTransport,
	}
}

// Composer exposes the composer, e.g. to preview messages.
func (s *Sender) Composer() *Composer {
	return s.composer
}

// Send delivers the operator notification and the acknowledgment for sub.
func (s *Sender) Send(ctx context.Context, sub Submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	if s.credentials == nil {
		return mailer.ErrMissingCredentials
	}
	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		return fmt.Errorf("resolve credentials: %w", err)
	}
	msgs, err := s.composer.Compose(sub, creds.User)
	if err != nil {
		return err
	}
	transport, err := s.newTransport(s.cfg, creds)
	if err != nil {
		return fmt.Errorf("create %s transport: %w", s.cfg.Driver, err)
	}
	if transport == nil {
		return errors.New("mail transport is nil")
	}
	utils.DebugCtx(ctx, "sending contact emails", "driver", transport.Name(), "count", len(msgs))
	return mailer.SendAll(ctx, transport, msgs...)
}
