package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/testutil"
)

func TestHandler(t *testing.T) {
	testutil.SetAccount(t, "vcare@example.com", "app-password")
	t.Setenv(constants.EnvMailDriver, "log")

	tests := []struct {
		name   string
		method string
		body   string
		code   int
		want   string
	}{
		{"sent", "POST", `{"name":"Bob","email":"bob@x.com","message":"Need help"}`, http.StatusOK, `{"status":"Ok","message":"Emails sent successfully!"}`},
		{"missing fields", "POST", `{"name":"Bob"}`, http.StatusBadRequest, `{"message":"Missing required fields"}`},
		{"wrong method", "GET", "", http.StatusMethodNotAllowed, `{"message":"Only POST requests allowed"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/send-mail", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			Handler(w, req)
			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
