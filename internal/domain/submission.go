package domain

import (
	"encoding/json"

	"telegram-relay-service/pkg/xerrors"
)

const (
	TypeBooking = "booking"
	TypeContact = "contact"
)

// Submission is one booking or contact form post from the store front-end.
type Submission struct {
	Type    string   `json:"type"`
	User    *User    `json:"user"`
	Product *Product `json:"product,omitempty"`
	Message string   `json:"message,omitempty"`
}

type User struct {
	Name     string `json:"name"`
	Whatsapp string `json:"whatsapp"`
}

// Product carries the booked item. None of its fields are required; empty
// values fall back to placeholder text at render time. Period wins over
// Duration when both are present.
type Product struct {
	Name     string     `json:"name"`
	Price    FlexString `json:"price"`
	Currency string     `json:"currency"`
	Category string     `json:"category"`
	Period   string     `json:"period"`
	Duration string     `json:"duration"`
	Notes    string     `json:"notes"`
	Features []string   `json:"features"`
}

// FlexString decodes either a JSON string or a JSON number. Store front-ends
// send product prices both ways.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if string(b) == "null" {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// Validate checks the required fields only. Product subfields are never
// required, even for bookings.
func (s *Submission) Validate() error {
	if s.Type == "" || s.User == nil || s.User.Name == "" || s.User.Whatsapp == "" {
		return xerrors.ErrMissingFields
	}
	if s.Type != TypeBooking && s.Type != TypeContact {
		return xerrors.ErrUnknownType
	}
	return nil
}
