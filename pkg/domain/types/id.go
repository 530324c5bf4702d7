package types

import "github.com/google/uuid"

// AlertID is the unique identifier of a persisted risk alert
type AlertID string

// NewAlertID generates a new random alert ID
func NewAlertID() AlertID {
	return AlertID(uuid.New().String())
}

// String returns the string representation of the alert ID
func (i AlertID) String() string {
	return string(i)
}

// StrategyID is the unique identifier of an adoption strategy
type StrategyID string

// String returns the string representation of the strategy ID
func (i StrategyID) String() string {
	return string(i)
}

// AssessmentID is the unique identifier of a readiness assessment
type AssessmentID string

// String returns the string representation of the assessment ID
func (i AssessmentID) String() string {
	return string(i)
}
