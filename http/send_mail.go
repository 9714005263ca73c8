package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/contact"
	"github.com/vcare/contactmail/mailer"
	"github.com/vcare/contactmail/telemetry"
	"github.com/vcare/contactmail/utils"
)

// Outcome is the terminal state of one submission request.
type Outcome string

const (
	OutcomeMethodRejected     Outcome = "method_rejected"
	OutcomeValidationRejected Outcome = "validation_rejected"
	OutcomeSent               Outcome = "sent"
	OutcomeTransportFailed    Outcome = "transport_failed"
)

// Response is the JSON body returned for every outcome.
type Response struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// SendMailOptions configures a SendMailHandler.
type SendMailOptions struct {
	Config      *config.Config
	Credentials mailer.CredentialsSource
	// NewTransport defaults to mailer.New.
	NewTransport mailer.TransportFactory
}

// SendMailHandler accepts a contact-form POST and sends the operator
// notification and the submitter acknowledgment concurrently.
type SendMailHandler struct {
	sender *contact.Sender
}

var _ http.Handler = (*SendMailHandler)(nil)

func NewSendMailHandler(opts SendMailOptions) *SendMailHandler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return &SendMailHandler{
		sender: contact.NewSender(cfg.Mail, opts.Credentials, opts.NewTransport),
	}
}

func (h *SendMailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	ctx := utils.WithRequestID(r.Context(), reqID)
	w.Header().Set(constants.HeaderRequestID, reqID)

	if r.Method != http.MethodPost {
		h.finish(ctx, w, r.Method, OutcomeMethodRejected, http.StatusMethodNotAllowed,
			Response{Message: constants.ResponseOnlyPOSTAllowed})
		return
	}

	sub, err := contact.Decode(http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes))
	if err != nil {
		utils.DebugCtx(ctx, "submission rejected", "error", err)
		h.finish(ctx, w, r.Method, OutcomeValidationRejected, http.StatusBadRequest,
			Response{Message: constants.ResponseMissingFields})
		return
	}

	if err := h.sender.Send(ctx, sub); err != nil {
		utils.ErrorCtx(ctx, constants.LogSendFailed, "error", err)
		h.finish(ctx, w, r.Method, OutcomeTransportFailed, http.StatusInternalServerError,
			Response{Status: constants.StatusError, Message: constants.ResponseSomethingWentWrong})
		return
	}

	h.finish(ctx, w, r.Method, OutcomeSent, http.StatusOK,
		Response{Status: constants.StatusOk, Message: constants.ResponseEmailsSent})
}

func (h *SendMailHandler) finish(ctx context.Context, w http.ResponseWriter, method string, outcome Outcome, code int, resp Response) {
	telemetry.SubmissionsTotal.WithLabelValues(string(outcome)).Inc()
	utils.InfoCtx(ctx, "contact submission handled", "outcome", outcome, "status", code, "method", method)
	if err := utils.WriteHTTPJSON(w, code, resp); err != nil {
		utils.Error(constants.LogFailedEncodeJSON, err)
	}
}
