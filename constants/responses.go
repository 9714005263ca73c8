package constants

// Response statuses
const (
	StatusOk    = "Ok"
	StatusError = "Error"
)

// HTTP Response Messages
const (
	ResponseOnlyPOSTAllowed     = "Only POST requests allowed"
	ResponseMissingFields       = "Missing required fields"
	ResponseEmailsSent          = "Emails sent successfully!"
	ResponseSomethingWentWrong  = "Something went wrong."
	ResponseHealthy             = `{"status":"healthy"}`
	ResponseInternalServerError = "Internal server error"
)

// Error Messages for Logging
const (
	LogFailedEncodeJSON       = "Failed to encode JSON response: %v"
	LogFailedWriteHealthCheck = "Failed to write health check response: %v"
	LogSendFailed             = "failed to send contact emails"
)
