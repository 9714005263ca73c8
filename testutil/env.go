package testutil

import (
	"testing"

	"github.com/vcare/contactmail/constants"
)

// contactEnv lists every variable the service reads from the environment.
var contactEnv = []string{
	constants.EnvDebug,
	constants.EnvEmailUser,
	constants.EnvEmailPass,
	constants.EnvMailDriver,
	constants.EnvMailHost,
	constants.EnvMailPort,
	constants.EnvOperatorAddress,
	constants.EnvSenderAddress,
	constants.EnvSecretsDriver,
	constants.EnvSecretsRegion,
	constants.EnvSecretsPrefix,
	constants.EnvCORSOrigins,
	constants.EnvLogLevel,
	constants.EnvTracingExporter,
	constants.EnvTracingEndpoint,
}

// CleanEnv blanks all service variables for the duration of the test, so
// values from the developer's shell or .env do not leak in.
func CleanEnv(t *testing.T) {
	t.Helper()
	for _, key := range contactEnv {
		t.Setenv(key, "")
	}
}

// SetAccount cleans the environment and sets the mail account credentials.
func SetAccount(t *testing.T, user, password string) {
	t.Helper()
	CleanEnv(t)
	t.Setenv(constants.EnvEmailUser, user)
	t.Setenv(constants.EnvEmailPass, password)
}
