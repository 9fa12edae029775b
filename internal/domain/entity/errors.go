package entity

import "errors"

// Validation and lookup errors shared by the use cases and the HTTP layer.
var (
	ErrInvalidWorkingHours = errors.New("invalid working hours")
	ErrInvalidMeeting      = errors.New("invalid meeting query")
	ErrInvalidSlotOptions  = errors.New("invalid slot options")
	ErrUnknownTimezone     = errors.New("unknown timezone")
	ErrLocationNotFound    = errors.New("location not found")
	ErrDuplicateLocation   = errors.New("location already added")
	ErrSessionNotFound     = errors.New("session not found")
	ErrBusy                = errors.New("operation already in progress")
)

// ErrUnsupportedExport is returned for an export format with no renderer.
var ErrUnsupportedExport = errors.New("unsupported export format")
