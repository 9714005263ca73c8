package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Mail    MailConfig     `json:"mail" yaml:"mail"`
	Secrets SecretsConfig  `json:"secrets" yaml:"secrets"`
	HTTP    HTTPConfig     `json:"http" yaml:"http"`
	CORS    CORSConfig     `json:"cors" yaml:"cors"`
	Log     LogConfig      `json:"log" yaml:"log"`
	Tracing *TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
}

// MailConfig describes where contact emails go and how they are delivered.
type MailConfig struct {
	// Driver selects the transport: "smtp" (default), "resend" or "log".
	Driver string `json:"driver" yaml:"driver"`
	Host   string `json:"host" yaml:"host"`
	Port   int    `json:"port" yaml:"port"`

	// OperatorAddress receives the form notification. Empty means the account identity.
	OperatorAddress string `json:"operator_address" yaml:"operator_address"`
	// SenderAddress is used in From. Empty means the account identity.
	SenderAddress  string `json:"sender_address" yaml:"sender_address"`
	SenderName     string `json:"sender_name" yaml:"sender_name"`
	FormSenderName string `json:"form_sender_name" yaml:"form_sender_name"`
	Brand          string `json:"brand" yaml:"brand"`

	// UserKey and PasswordKey name the secrets holding the account identity and secret.
	UserKey     string `json:"user_key" yaml:"user_key"`
	PasswordKey string `json:"password_key" yaml:"password_key"`
}

type SecretsConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

type HTTPConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

type TracingConfig struct {
	ServiceName string `json:"service_name,omitempty" yaml:"service_name,omitempty"`
	Exporter    string `json:"exporter" yaml:"exporter"`
	Endpoint    string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// LoadConfig reads a JSON or YAML config file and fills unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Addr returns the listen address for the local HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}
