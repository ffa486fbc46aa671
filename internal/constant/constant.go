package constant

const (
	// ContextKeyRequestID is the fiber Locals key holding the request id string.
	ContextKeyRequestID = "requestId"

	// RequestIDHeader is the response header carrying the request id.
	RequestIDHeader = "X-Statsboard-Request-ID"

	// ServiceName is used as the metrics namespace and the tracing service name.
	ServiceName = "statsboard"
)
