package constants

// CLI Commands and Subcommands
const (
	CmdRoot    = "contactmail"
	CmdServe   = "serve"
	CmdSend    = "send"
	CmdPreview = "preview"
)

// CLI Short Descriptions
const (
	DescRoot    = "Vcare contact-form mailer"
	DescServe   = "Serve the contact-form endpoint over HTTP"
	DescSend    = "Send a contact submission through the configured transport"
	DescPreview = "Render the two contact emails without sending them"
)

// CLI Flags
const (
	FlagConfig  = "config"
	FlagDebug   = "debug"
	FlagAddr    = "addr"
	FlagName    = "name"
	FlagEmail   = "email"
	FlagPhone   = "phone"
	FlagMessage = "message"
	FlagFile    = "file"
)

// CLI Output Messages
const (
	OutputEmailsSent   = "Both emails sent."
	OutputServeAddress = "Serving contact form on %s"
	OutputMessageHead  = "==> %s\nFrom: %s\nTo: %s\n"
	OutputReplyTo      = "Reply-To: %s\n"
	OutputSubject      = "Subject: %s\n\n"
)
