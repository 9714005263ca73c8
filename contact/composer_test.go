package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/mailer"
)

const account = "vcare1.enterprises@gmail.com"

func TestCompose_Scenario(t *testing.T) {
	c := NewComposer(config.Default().Mail)
	msgs, err := c.Compose(Submission{Name: "Bob", Email: "bob@x.com", Phone: "555-1234", Message: "Need help"}, account)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	op := msgs[0]
	assert.Equal(t, mailer.KindOperator, op.Kind)
	assert.Equal(t, mailer.Address{Name: "Vcare Website Form", Addr: account}, op.From)
	assert.Equal(t, "vcare1.enterprises@gmail.com", op.To)
	assert.Equal(t, mailer.Address{Name: "Bob", Addr: "bob@x.com"}, op.ReplyTo)
	assert.Equal(t, `"Bob" <bob@x.com>`, op.ReplyTo.String())
	assert.Equal(t, "New Vcare Contact Form Submission from Bob", op.Subject)
	assert.Contains(t, op.HTML, "<h2>New Contact Form Submission</h2>")
	assert.Contains(t, op.HTML, "<p><strong>Name:</strong> Bob</p>")
	assert.Contains(t, op.HTML, `<a href="mailto:bob@x.com">bob@x.com</a>`)
	assert.Contains(t, op.HTML, "<p><strong>Phone:</strong> 555-1234</p>")
	assert.Contains(t, op.HTML, `<p style="white-space: pre-wrap;">Need help</p>`)

	ack := msgs[1]
	assert.Equal(t, mailer.KindAcknowledgment, ack.Kind)
	assert.Equal(t, mailer.Address{Name: "Vcare", Addr: account}, ack.From)
	assert.Equal(t, "bob@x.com", ack.To)
	assert.True(t, ack.ReplyTo.IsZero())
	assert.Equal(t, "Thank you for contacting Vcare!", ack.Subject)
	assert.Contains(t, ack.HTML, "Thank You for Your Inquiry, Bob!")
	assert.Contains(t, ack.HTML, "<strong>Vcare will soon address your problem.</strong>")
	assert.Contains(t, ack.HTML, "<p><strong>Email:</strong> bob@x.com</p>")
	assert.Contains(t, ack.HTML, "Best regards,<br>The Vcare Team")
}

func TestCompose_PhoneNotProvided(t *testing.T) {
	c := NewComposer(config.Default().Mail)
	msgs, err := c.Compose(Submission{Name: "Alice", Email: "alice@example.com", Message: "Hi"}, account)
	require.NoError(t, err)
	for _, msg := range msgs {
		assert.Contains(t, msg.HTML, "<p><strong>Phone:</strong> Not provided</p>")
	}
}

func TestCompose_PreservesWhitespace(t *testing.T) {
	c := NewComposer(config.Default().Mail)
	msg, err := c.AcknowledgmentMessage(Submission{Name: "A", Email: "a@b.c", Message: "line one\n  line two"}, account)
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "line one\n  line two")
}

func TestCompose_EscapesHTML(t *testing.T) {
	c := NewComposer(config.Default().Mail)
	msg, err := c.OperatorMessage(Submission{Name: "<b>Eve</b>", Email: "eve@x.com", Message: "<script>alert(1)</script>"}, account)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	// subject and reply-to are headers, not HTML
	assert.Equal(t, "New Vcare Contact Form Submission from <b>Eve</b>", msg.Subject)
}

func TestCompose_AddressFallbacks(t *testing.T) {
	cfg := config.Default().Mail
	cfg.OperatorAddress = ""
	cfg.SenderAddress = ""
	c := NewComposer(cfg)
	msgs, err := c.Compose(Submission{Name: "Bob", Email: "bob@x.com", Message: "m"}, "account@example.com")
	require.NoError(t, err)
	assert.Equal(t, "account@example.com", msgs[0].To)
	assert.Equal(t, `"Vcare Website Form" <account@example.com>`, msgs[0].From.String())
	assert.Equal(t, `"Vcare" <account@example.com>`, msgs[1].From.String())

	cfg.OperatorAddress = "inbox@example.com"
	cfg.SenderAddress = "noreply@example.com"
	cfg.Brand = "Acme"
	c = NewComposer(cfg)
	msgs, err = c.Compose(Submission{Name: "Bob", Email: "bob@x.com", Message: "m"}, "account@example.com")
	require.NoError(t, err)
	assert.Equal(t, "inbox@example.com", msgs[0].To)
	assert.Equal(t, `"Vcare" <noreply@example.com>`, msgs[1].From.String())
	assert.Equal(t, "Thank you for contacting Acme!", msgs[1].Subject)
	assert.Contains(t, msgs[1].HTML, "The Acme Team")
}
