package xerrors

import "errors"

// Relay pipeline
var (
	ErrMissingFields = errors.New("missing required submission fields")
	ErrUnknownType   = errors.New("unknown submission type")
	ErrMissingConfig = errors.New("bot token or chat id not configured")
)
