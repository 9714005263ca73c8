package config

import "github.com/vcare/contactmail/constants"

// Defaults for the Vcare deployment.
const (
	DefaultConfigPath = constants.ConfigFileName

	DefaultMailHost        = "smtp.gmail.com"
	DefaultMailPort        = 465
	DefaultOperatorAddress = "vcare1.enterprises@gmail.com"
	DefaultSenderName      = "Vcare"
	DefaultFormSenderName  = "Vcare Website Form"
	DefaultBrand           = "Vcare"

	DefaultHTTPPort    = 3000
	DefaultLogLevel    = "info"
	DefaultServiceName = "contactmail"
)

// Default returns a Config populated with the Vcare defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	m := &c.Mail
	if m.Driver == "" {
		m.Driver = constants.MailDriverSMTP
	}
	if m.Host == "" {
		m.Host = DefaultMailHost
	}
	if m.Port == 0 {
		m.Port = DefaultMailPort
	}
	if m.OperatorAddress == "" {
		m.OperatorAddress = DefaultOperatorAddress
	}
	if m.SenderName == "" {
		m.SenderName = DefaultSenderName
	}
	if m.FormSenderName == "" {
		m.FormSenderName = DefaultFormSenderName
	}
	if m.Brand == "" {
		m.Brand = DefaultBrand
	}
	if m.UserKey == "" {
		m.UserKey = constants.EnvEmailUser
	}
	if m.PasswordKey == "" {
		m.PasswordKey = constants.EnvEmailPass
	}
	if c.Secrets.Driver == "" {
		c.Secrets.Driver = constants.SecretsDriverEnv
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultHTTPPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
