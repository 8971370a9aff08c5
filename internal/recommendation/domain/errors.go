package domain

import "errors"

var (
	ErrMessageTooShort  = errors.New("message is too short")
	ErrMoodRequired     = errors.New("mood is required")
	ErrOccasionRequired = errors.New("occasion is required")
	ErrInvalidBudget    = errors.New("budget must be greater than zero")
)

// MinMessageLength is the shortest trimmed message accepted by the chat flow.
const MinMessageLength = 2
