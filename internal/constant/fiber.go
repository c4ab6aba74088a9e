package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Pulseboard-Request-ID"

	// SlimHeaderKey indicates the current request shall be ignored by tracing.
	// This is typically used by probes to avoid useless spans being exported.
	SlimHeaderKey = "X-Slim"
)
