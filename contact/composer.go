package contact

import (
	_ "embed"
	"fmt"

	pongo2 "github.com/flosch/pongo2/v6"
	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/mailer"
)

var (
	//go:embed templates/operator.html
	operatorHTML string
	//go:embed templates/acknowledgment.html
	acknowledgmentHTML string

	operatorTemplate       = pongo2.Must(pongo2.FromString(operatorHTML))
	acknowledgmentTemplate = pongo2.Must(pongo2.FromString(acknowledgmentHTML))
)

// Composer builds the two contact emails. Submission fields are HTML-escaped.
type Composer struct {
	cfg config.MailConfig
}

func NewComposer(cfg config.MailConfig) *Composer {
	return &Composer{cfg: cfg}
}

// Compose returns the operator notification followed by the submitter acknowledgment.
// account is the mail account identity, used where no explicit address is configured.
func (c *Composer) Compose(sub Submission, account string) ([]mailer.Message, error) {
	op, err := c.OperatorMessage(sub, account)
	if err != nil {
		return nil, err
	}
	ack, err := c.AcknowledgmentMessage(sub, account)
	if err != nil {
		return nil, err
	}
	return []mailer.Message{op, ack}, nil
}

// OperatorMessage notifies the operator mailbox. Replies go to the submitter.
func (c *Composer) OperatorMessage(sub Submission, account string) (mailer.Message, error) {
	html, err := c.render(operatorTemplate, sub)
	if err != nil {
		return mailer.Message{}, fmt.Errorf("render operator email: %w", err)
	}
	return mailer.Message{
		Kind:    mailer.KindOperator,
		From:    mailer.Address{Name: c.cfg.FormSenderName, Addr: c.senderAddress(account)},
		To:      firstNonEmpty(c.cfg.OperatorAddress, account),
		ReplyTo: mailer.Address{Name: sub.Name, Addr: sub.Email},
		Subject: fmt.Sprintf("New %s Contact Form Submission from %s", c.cfg.Brand, sub.Name),
		HTML:    html,
	}, nil
}

// AcknowledgmentMessage thanks the submitter and echoes their details back.
func (c *Composer) AcknowledgmentMessage(sub Submission, account string) (mailer.Message, error) {
	html, err := c.render(acknowledgmentTemplate, sub)
	if err != nil {
		return mailer.Message{}, fmt.Errorf("render acknowledgment email: %w", err)
	}
	return mailer.Message{
		Kind:    mailer.KindAcknowledgment,
		From:    mailer.Address{Name: c.cfg.SenderName, Addr: c.senderAddress(account)},
		To:      sub.Email,
		Subject: fmt.Sprintf("Thank you for contacting %s!", c.cfg.Brand),
		HTML:    html,
	}, nil
}

func (c *Composer) senderAddress(account string) string {
	return firstNonEmpty(c.cfg.SenderAddress, account)
}

func (c *Composer) render(tpl *pongo2.Template, sub Submission) (string, error) {
	return tpl.Execute(pongo2.Context{
		"name":    sub.Name,
		"email":   sub.Email,
		"phone":   sub.PhoneOrDefault(),
		"message": sub.Message,
		"brand":   c.cfg.Brand,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
