package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/vcare/contactmail/constants"
)

// FromEnv returns the defaults overlaid with CONTACTMAIL_* environment variables.
// Serverless invocations call it on every request.
func FromEnv() *Config {
	cfg := Default()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg with any CONTACTMAIL_* variables present in the environment.
func ApplyEnv(cfg *Config) {
	setString(&cfg.Mail.Driver, constants.EnvMailDriver)
	setString(&cfg.Mail.Host, constants.EnvMailHost)
	if v := os.Getenv(constants.EnvMailPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Mail.Port = port
		}
	}
	setString(&cfg.Mail.OperatorAddress, constants.EnvOperatorAddress)
	setString(&cfg.Mail.SenderAddress, constants.EnvSenderAddress)
	setString(&cfg.Secrets.Driver, constants.EnvSecretsDriver)
	setString(&cfg.Secrets.Region, constants.EnvSecretsRegion)
	setString(&cfg.Secrets.Prefix, constants.EnvSecretsPrefix)
	setString(&cfg.Log.Level, constants.EnvLogLevel)
	if v := os.Getenv(constants.EnvCORSOrigins); v != "" {
		cfg.CORS.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv(constants.EnvTracingExporter); v != "" {
		if cfg.Tracing == nil {
			cfg.Tracing = &TracingConfig{}
		}
		cfg.Tracing.Exporter = v
		setString(&cfg.Tracing.Endpoint, constants.EnvTracingEndpoint)
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
