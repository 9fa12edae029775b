package entity

import (
	"fmt"
	"net/http"
)

// ImageUpload is a single image file received for background removal.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Relay error codes returned to clients.
const (
	RelayNotConfigured     = "not_configured"
	RelayInvalidAPIKey     = "invalid_api_key"
	RelayQuotaExceeded     = "quota_exceeded"
	RelayFileTooLarge      = "file_too_large"
	RelayUnsupportedFormat = "unsupported_format"
	RelayMissingFile       = "missing_file"
	RelayProcessingFailed  = "processing_failed"
)

// RelayError is a background removal failure with the status to report.
type RelayError struct {
	Status  int
	Code    string
	Message string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("background removal failed (%d %s): %s", e.Status, e.Code, e.Message)
}

// NewRelayErrorFromUpstream maps an upstream HTTP status to the fixed error vocabulary.
func NewRelayErrorFromUpstream(status int) *RelayError {
	switch status {
	case http.StatusUnauthorized:
		return &RelayError{Status: http.StatusUnauthorized, Code: RelayInvalidAPIKey, Message: "Invalid API key"}
	case http.StatusPaymentRequired:
		return &RelayError{Status: http.StatusPaymentRequired, Code: RelayQuotaExceeded, Message: "API quota exceeded. Please try again later"}
	case http.StatusRequestEntityTooLarge:
		return &RelayError{Status: http.StatusRequestEntityTooLarge, Code: RelayFileTooLarge, Message: "Image file is too large"}
	case http.StatusUnsupportedMediaType:
		return &RelayError{Status: http.StatusUnsupportedMediaType, Code: RelayUnsupportedFormat, Message: "Unsupported image format"}
	default:
		return &RelayError{Status: http.StatusInternalServerError, Code: RelayProcessingFailed, Message: "Failed to remove background"}
	}
}
