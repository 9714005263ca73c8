package http

import (
	"net/http"
	"time"

	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/telemetry"
	"github.com/vcare/contactmail/utils"
)

// NewMux routes the contact endpoint, health check and metrics.
func NewMux(cfg *config.Config, opts SendMailOptions) *http.ServeMux {
	if opts.Config == nil {
		opts.Config = cfg
	}
	mux := http.NewServeMux()
	sendMail := WithCORS(cfg.CORS, NewSendMailHandler(opts))
	mux.Handle(constants.RouteSendMail, telemetry.WrapHandler("send_mail", sendMail))

	mux.HandleFunc(constants.RouteHealthz, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		if _, err := w.Write([]byte(constants.ResponseHealthy)); err != nil {
			utils.Error(constants.LogFailedWriteHealthCheck, err)
		}
	})
	mux.Handle(constants.RouteMetrics, telemetry.MetricsHandler())
	return mux
}

// NewServer returns an http.Server for local or long-running deployments.
func NewServer(cfg *config.Config, opts SendMailOptions) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewMux(cfg, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
