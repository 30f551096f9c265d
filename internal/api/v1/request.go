package v1

import (
	"encoding/json"

	"github.com/Behyna/safetycheck/internal/location"
	"github.com/Behyna/safetycheck/internal/model"
)

// Username and APIKey are optional on both requests; when both are present
// they take precedence over the configured provider credentials.
type TestSMSRequest struct {
	Username    string `json:"username"`
	APIKey      string `json:"apiKey"`
	PhoneNumber string `json:"phoneNumber" validate:"required,intlphone"`
	ContactName string `json:"contactName" validate:"required"`
}

// Contacts stays raw so that a wrongly shaped list reaches the dispatcher
// instead of failing body parsing.
type EmergencyRequest struct {
	Username string          `json:"username"`
	APIKey   string          `json:"apiKey"`
	Contacts json.RawMessage `json:"contacts"`
	Location *location.Input `json:"location"`
}

type ContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ContactList returns nil when contacts is missing or not an array. An entry
// that is not a contact object becomes an empty contact.
func (r *EmergencyRequest) ContactList() []model.Contact {
	var entries []json.RawMessage
	if err := json.Unmarshal(r.Contacts, &entries); err != nil {
		return nil
	}

	contacts := make([]model.Contact, 0, len(entries))
	for _, entry := range entries {
		var contact ContactRequest
		if err := json.Unmarshal(entry, &contact); err != nil {
			contact = ContactRequest{}
		}
		contacts = append(contacts, model.Contact{Name: contact.Name, Phone: contact.Phone})
	}

	return contacts
}
