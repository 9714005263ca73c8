package constants

// Configuration Files
const (
	ConfigFileName = "contactmail.config.json"
)

// Environment Variables
const (
	EnvDebug = "CONTACTMAIL_DEBUG"

	// Credentials, named after the original deployment's variables.
	EnvEmailUser = "EMAIL_USER"
	EnvEmailPass = "EMAIL_PASS"

	EnvMailDriver      = "CONTACTMAIL_MAIL_DRIVER"
	EnvMailHost        = "CONTACTMAIL_MAIL_HOST"
	EnvMailPort        = "CONTACTMAIL_MAIL_PORT"
	EnvOperatorAddress = "CONTACTMAIL_OPERATOR_ADDRESS"
	EnvSenderAddress   = "CONTACTMAIL_SENDER_ADDRESS"
	EnvSecretsDriver   = "CONTACTMAIL_SECRETS_DRIVER"
	EnvSecretsRegion   = "CONTACTMAIL_SECRETS_REGION"
	EnvSecretsPrefix   = "CONTACTMAIL_SECRETS_PREFIX"
	EnvCORSOrigins     = "CONTACTMAIL_CORS_ORIGINS"
	EnvLogLevel        = "CONTACTMAIL_LOG_LEVEL"
	EnvTracingExporter = "CONTACTMAIL_TRACING_EXPORTER"
	EnvTracingEndpoint = "CONTACTMAIL_TRACING_ENDPOINT"
)

// Mail Drivers
const (
	MailDriverSMTP   = "smtp"
	MailDriverResend = "resend"
	MailDriverLog    = "log"
)

// Secrets Drivers
const (
	SecretsDriverEnv = "env"
	SecretsDriverAWS = "aws"
)

// Tracing Exporters
const (
	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
	TracingExporterOTLP   = "otlp"
)
