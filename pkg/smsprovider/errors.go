package smsprovider

const (
	ErrorCodeServerError     = "SERVER_ERROR"     // For 5xx HTTP status
	ErrorCodeTimeout         = "TIMEOUT"          // For context timeout
	ErrorCodeNetworkError    = "NETWORK_ERROR"    // For connection failures
	ErrorCodeRejected        = "REJECTED"         // Provider answered but refused the message
	ErrorCodeInvalidResponse = "INVALID_RESPONSE" // Body could not be mapped
	ErrorCodeUnknown         = "UNKNOWN"          // Transport failed without a usable error
)

const UnknownErrorMessage = "Unknown error"

var (
	ErrTimeout         = &Error{Code: ErrorCodeTimeout, Message: "send timed out"}
	ErrServerError     = &Error{Code: ErrorCodeServerError}
	ErrNetworkError    = &Error{Code: ErrorCodeNetworkError}
	ErrRejected        = &Error{Code: ErrorCodeRejected}
	ErrInvalidResponse = &Error{Code: ErrorCodeInvalidResponse}
)

// Error is a send failure. Message carries the provider's own text when it
// supplied one; errors.Is matches on Code.
type Error struct {
	Code    string
	Message string
}

func NewError(code, message string) *Error {
	if message == "" {
		message = UnknownErrorMessage
	}
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return UnknownErrorMessage
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
