// Package mailer delivers contact emails through a pluggable transport.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/constants"
)

var (
	ErrUnsupportedDriver  = errors.New("unsupported mail driver")
	ErrMissingCredentials = errors.New("mail credentials are not configured")
)

// Message kinds, used for logs and metrics.
const (
	KindOperator       = "operator"
	KindAcknowledgment = "acknowledgment"
)

// Address is a mailbox with an optional display name. The name is kept apart
// from the address so transports can encode it without touching the address.
type Address struct {
	Name string
	Addr string
}

// String renders the address as "Name" <addr>, or just addr without a name.
func (a Address) String() string {
	return FormatAddress(a.Name, a.Addr)
}

// IsZero reports whether no mailbox is set.
func (a Address) IsZero() bool {
	return a.Addr == ""
}

// Message is one outbound email.
type Message struct {
	Kind    string
	From    Address
	To      string
	ReplyTo Address
	Subject string
	HTML    string
}

// Credentials identify the mail account. User doubles as the default sender address.
type Credentials struct {
	User     string
	Password string
}

// String never includes the password.
func (c Credentials) String() string {
	return c.User
}

// Transport sends a single message.
type Transport interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// TransportFactory builds a transport for one invocation.
type TransportFactory func(cfg config.MailConfig, creds Credentials) (Transport, error)

// New returns the transport selected by cfg.Driver.
func New(cfg config.MailConfig, creds Credentials) (Transport, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", constants.MailDriverSMTP:
		if creds.User == "" || creds.Password == "" {
			return nil, ErrMissingCredentials
		}
		return NewSMTPTransport(cfg.Host, cfg.Port, creds), nil
	case constants.MailDriverResend:
		if creds.Password == "" {
			return nil, ErrMissingCredentials
		}
		return NewResendTransport(creds.Password), nil
	case constants.MailDriverLog:
		return NewLogTransport(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.Driver)
	}
}

// FormatAddress renders a display-name address as "Name" <addr>.
func FormatAddress(name, addr string) string {
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%q <%s>", name, addr)
}
