package constants

// Content Types
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"
)

// HTTP Headers
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
)

// Routes
const (
	RouteSendMail = "/api/send-mail"
	RouteHealthz  = "/healthz"
	RouteMetrics  = "/metrics"
)

// MaxRequestBodyBytes caps how much of a submission body is read.
const MaxRequestBodyBytes = 1 << 20
