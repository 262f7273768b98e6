package contextkeys

// RequestId keys the per-request ID injected by the logging middleware.
type RequestId struct{}
