package forge

import "errors"

// Error definitions for forge API operations.
var (
	errInvalidBaseURL = errors.New("invalid API base URL")

	// ErrInvalidBaseURL is returned when the configured API base URL cannot be parsed.
	ErrInvalidBaseURL = errInvalidBaseURL
)
