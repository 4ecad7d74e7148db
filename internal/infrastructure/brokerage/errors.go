package brokerage

// Upstream failure messages shown to the user when the brokerage response
// carries no message of its own.
const (
	msgConnectFailed = "Failed to connect to brokerage API. Please try again."
	msgBatchFailed   = "Failed to fetch market data. Please try again."
)

// APIError is the single error kind surfaced by the client. Message is the
// upstream error message when one was extracted, otherwise an
// operation-specific fallback. An APIError is never wrapped a second time.
type APIError struct {
	Message string
	Code    string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorEnvelope covers both upstream error shapes: a single error object
// and a multi-error list. The first list entry wins.
type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error,omitempty"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// normalize extracts the user-facing message and code, falling back to the
// operation default when the body carried neither shape.
func (env errorEnvelope) normalize(fallback string) *APIError {
	if env.Error != nil && env.Error.Message != "" {
		return &APIError{Message: env.Error.Message, Code: env.Error.Code}
	}
	if len(env.Errors) > 0 && env.Errors[0].Message != "" {
		return &APIError{Message: env.Errors[0].Message, Code: env.Errors[0].Code}
	}
	return &APIError{Message: fallback}
}
