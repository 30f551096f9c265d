package constants

const (
	ErrCodeContactsRequired     = "CONTACTS_REQUIRED"
	ErrCodeInvalidContact       = "INVALID_CONTACT"
	ErrCodeServiceNotConfigured = "SERVICE_NOT_CONFIGURED"
	ErrCodeProviderFailed       = "PROVIDER_FAILED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody   = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeNotFound             = "NOT_FOUND"
)

const (
	ErrMsgContactsRequired     = "No emergency contacts provided"
	ErrMsgInvalidContact       = "Invalid contact"
	ErrMsgServiceNotConfigured = "SMS service not configured. Please contact administrator."
	ErrMsgProviderFailed       = "SMS sending failed"
	ErrMsgInternalError        = "Failed to send emergency alerts. Please try again or contact emergency services directly."
	ErrMsgInvalidRequestBody   = "failed to parse request body"
	ErrMsgValidationFailed     = "request validation failed"
	ErrMsgRateLimited          = "Too many SMS requests from this IP, please try again later."
	ErrMsgNotFound             = "route not found"
)

var errorMessages = map[string]string{
	ErrCodeContactsRequired:     ErrMsgContactsRequired,
	ErrCodeInvalidContact:       ErrMsgInvalidContact,
	ErrCodeServiceNotConfigured: ErrMsgServiceNotConfigured,
	ErrCodeProviderFailed:       ErrMsgProviderFailed,
	ErrCodeInternalError:        ErrMsgInternalError,
	ErrCodeInvalidRequestBody:   ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:     ErrMsgValidationFailed,
	ErrCodeRateLimited:          ErrMsgRateLimited,
	ErrCodeNotFound:             ErrMsgNotFound,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeContactsRequired, ErrCodeInvalidContact, ErrCodeProviderFailed,
		ErrCodeInvalidRequestBody, ErrCodeValidationFailed:
		return 400
	case ErrCodeNotFound:
		return 404
	case ErrCodeRateLimited:
		return 429
	case ErrCodeServiceNotConfigured:
		return 503
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}

// HasDetail reports whether the error's own text is safe and useful to show
// the caller instead of the generic message for its code.
func HasDetail(code string) bool {
	switch code {
	case ErrCodeInvalidContact, ErrCodeProviderFailed, ErrCodeValidationFailed:
		return true
	default:
		return false
	}
}
