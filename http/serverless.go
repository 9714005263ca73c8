package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/mailer"
	"github.com/vcare/contactmail/secrets"
	"github.com/vcare/contactmail/utils"
)

var initOnce sync.Once

// Handler is the Vercel function entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	ServerlessHandler(w, r)
}

// ServerlessHandler serves one serverless invocation. Configuration and
// credentials are read from the environment on every call.
func ServerlessHandler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		// A .env file is only present in local development.
		_ = godotenv.Load()
		utils.SetMode(config.FromEnv().Log.Level)
	})
	cfg := config.FromEnv()

	var creds mailer.CredentialsSource
	provider, err := secrets.NewSecretsProvider(r.Context(), &cfg.Secrets)
	if err != nil {
		creds = failingCredentials{err: err}
	} else {
		defer provider.Close()
		creds = mailer.NewSecretsCredentials(provider, cfg.Mail.UserKey, cfg.Mail.PasswordKey)
	}

	h := NewSendMailHandler(SendMailOptions{Config: cfg, Credentials: creds})
	WithCORS(cfg.CORS, h).ServeHTTP(w, r)
}

// WithCORS wraps next with CORS handling when origins are configured.
// Preflight requests are answered by the middleware and never reach next.
func WithCORS(cfg config.CORSConfig, next http.Handler) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return next
	}
	return cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{constants.HeaderContentType},
		ExposedHeaders: []string{constants.HeaderRequestID},
	}).Handler(next)
}

type failingCredentials struct {
	err error
}

func (f failingCredentials) Credentials(context.Context) (mailer.Credentials, error) {
	return mailer.Credentials{}, f.err
}
