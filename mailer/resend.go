package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/utils"
)

// ResendTransport sends through the Resend HTTP API. The API key is the account secret.
type ResendTransport struct {
	client *resend.Client
}

var _ Transport = (*ResendTransport)(nil)

func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{client: resend.NewClient(apiKey)}
}

func (r *ResendTransport) Name() string { return constants.MailDriverResend }

func (r *ResendTransport) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From.String(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if !msg.ReplyTo.IsZero() {
		params.ReplyTo = msg.ReplyTo.String()
	}

	sent, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	utils.DebugCtx(ctx, "resend sent", "message_id", sent.Id, "kind", msg.Kind)
	return nil
}
