// Package api holds the Vercel serverless functions. Each exported handler
// is deployed at the path of its file, so this one serves /api/send-mail.
package api

import (
	"net/http"

	contacthttp "github.com/vcare/contactmail/http"
)

// Handler receives contact-form submissions.
func Handler(w http.ResponseWriter, r *http.Request) {
	contacthttp.Handler(w, r)
}
