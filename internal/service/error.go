package service

import "errors"

const ErrMsgDispatchDeadline = "did not complete before dispatch deadline"

var (
	ErrServiceNotConfigured = errors.New("SMS provider credentials are not configured")
	ErrContactsRequired     = errors.New("no emergency contacts provided")
	ErrInvalidContact       = errors.New("phone number must include country code (e.g., +1234567890)")
	ErrContactNameRequired  = errors.New("contact name is required")
	ErrCompose              = errors.New("failed to compose alert")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
