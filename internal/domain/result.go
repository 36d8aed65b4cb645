package domain

import "time"

// RelayResult classifies one dispatch attempt. Delivered=false with an
// ErrorDescription means Telegram logically rejected the message; the
// submission itself still counts as received.
type RelayResult struct {
	Delivered        bool
	MessageID        int64
	ErrorDescription string

	// WhatsappLink is pre-filled with the welcome text after a successful
	// delivery, plain otherwise.
	WhatsappLink  string
	Phone         string
	MessageLength int
	Timestamp     time.Time
}
