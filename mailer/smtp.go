package mailer

import (
	"context"
	"fmt"

	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/utils"
	"gopkg.in/gomail.v2"
)

// SMTPTransport delivers over SMTP with gomail. Port 465 uses implicit TLS,
// other ports upgrade with STARTTLS when the server offers it.
type SMTPTransport struct {
	host  string
	port  int
	creds Credentials
}

var _ Transport = (*SMTPTransport)(nil)

func NewSMTPTransport(host string, port int, creds Credentials) *SMTPTransport {
	return &SMTPTransport{host: host, port: port, creds: creds}
}

func (s *SMTPTransport) Name() string { return constants.MailDriverSMTP }

// Send opens a fresh connection per message. gomail.Dialer picks its auth
// mechanism while dialing, so a dialer is never shared between goroutines.
func (s *SMTPTransport) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From.Addr, msg.From.Name)
	m.SetHeader("To", msg.To)
	if !msg.ReplyTo.IsZero() {
		m.SetAddressHeader("Reply-To", msg.ReplyTo.Addr, msg.ReplyTo.Name)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody(constants.ContentTypeHTML, msg.HTML)

	d := gomail.NewDialer(s.host, s.port, s.creds.User, s.creds.Password)
	utils.DebugCtx(ctx, "smtp send", "host", s.host, "port", s.port, "kind", msg.Kind, "to", msg.To)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s:%d failed: %w", s.host, s.port, err)
	}
	return nil
}
