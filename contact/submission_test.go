package contact

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Valid(t *testing.T) {
	sub, err := Decode(strings.NewReader(`{"name":"Bob","email":"bob@x.com","phone":"555-1234","message":"Need help"}`))
	require.NoError(t, err)
	assert.Equal(t, Submission{Name: "Bob", Email: "bob@x.com", Phone: "555-1234", Message: "Need help"}, sub)
}

func TestDecode_OptionalPhone(t *testing.T) {
	for _, body := range []string{
		`{"name":"Alice","email":"alice@example.com","message":"Hi"}`,
		`{"name":"Alice","email":"alice@example.com","message":"Hi","phone":""}`,
		`{"name":"Alice","email":"alice@example.com","message":"Hi","phone":null}`,
	} {
		sub, err := Decode(strings.NewReader(body))
		require.NoError(t, err, body)
		assert.Equal(t, "", sub.Phone)
		assert.Equal(t, "Not provided", sub.PhoneOrDefault())
	}
}

func TestDecode_NumericPhone(t *testing.T) {
	sub, err := Decode(strings.NewReader(`{"name":"Bob","email":"bob@x.com","message":"m","phone":5551234}`))
	require.NoError(t, err)
	assert.Equal(t, "5551234", sub.Phone)
	assert.Equal(t, "5551234", sub.PhoneOrDefault())
}

func TestDecode_PresenceOnly(t *testing.T) {
	// No format checks: an odd email and extra fields are accepted.
	sub, err := Decode(strings.NewReader(`{"name":"x","email":"not-an-email","message":"m","extra":true}`))
	require.NoError(t, err)
	assert.Equal(t, "not-an-email", sub.Email)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"bob@x.com","message":"Need help"}`},
		{"missing email", `{"name":"Bob","message":"Need help"}`},
		{"missing message", `{"name":"Bob","email":"bob@x.com"}`},
		{"empty name", `{"name":"","email":"bob@x.com","message":"Need help"}`},
		{"empty email", `{"name":"Bob","email":"","message":"Need help"}`},
		{"empty message", `{"name":"Bob","email":"bob@x.com","message":""}`},
		{"null name", `{"name":null,"email":"bob@x.com","message":"Need help"}`},
		{"empty object", `{}`},
		{"empty body", ``},
		{"not json", `name=Bob`},
		{"array", `[]`},
		{"object phone", `{"name":"Bob","email":"bob@x.com","message":"m","phone":{"n":1}}`},
		{"bool phone", `{"name":"Bob","email":"bob@x.com","message":"m","phone":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingFields)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestSubmission_Validate(t *testing.T) {
	err := Submission{Email: "bob@x.com"}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"name", "message"}, verr.Fields)
	assert.Equal(t, "missing required fields: [name message]", err.Error())

	assert.NoError(t, Submission{Name: "n", Email: "e", Message: "m"}.Validate())
}
