package mailer

import (
	"context"

	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/utils"
)

// LogTransport logs messages instead of delivering them. Used for local development.
type LogTransport struct{}

var _ Transport = (*LogTransport)(nil)

func NewLogTransport() *LogTransport {
	return &LogTransport{}
}

func (LogTransport) Name() string { return constants.MailDriverLog }

func (LogTransport) Send(ctx context.Context, msg Message) error {
	utils.InfoCtx(ctx, "mail not delivered (log driver)",
		"kind", msg.Kind, "from", msg.From.String(), "to", msg.To, "reply_to", msg.ReplyTo.String(), "subject", msg.Subject)
	return nil
}
