package service

import (
	"github.com/Behyna/safetycheck/internal/location"
	"github.com/Behyna/safetycheck/internal/model"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
)

// DispatchCommand carries one emergency alert request. Credentials are
// optional; when both fields are set they replace the configured pair for
// this dispatch only.
type DispatchCommand struct {
	Contacts    []model.Contact
	Location    *location.Input
	Credentials smsprovider.Credentials
}

type TestMessageCommand struct {
	Contact     model.Contact
	Credentials smsprovider.Credentials
}
