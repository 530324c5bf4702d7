package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrAlertNotFound      = errors.New("alert not found")
	ErrInvalidTransition  = errors.New("invalid alert status transition")
	ErrNoScanInput        = errors.New("scan requires strategies or assessments")
	ErrGenerationRequired = errors.New("generation service is not configured")
)
