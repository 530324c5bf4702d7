package types

import "fmt"

// AlertStatus represents the lifecycle state of a risk alert.
//
// Transitions: new -> acknowledged|dismissed, acknowledged -> in_progress|dismissed,
// in_progress -> resolved|dismissed. resolved and dismissed are terminal.
type AlertStatus string

const (
	AlertStatusNew          AlertStatus = "new"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusInProgress   AlertStatus = "in_progress"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusDismissed    AlertStatus = "dismissed"
)

// AllAlertStatuses returns all valid alert statuses
func AllAlertStatuses() []AlertStatus {
	return []AlertStatus{
		AlertStatusNew,
		AlertStatusAcknowledged,
		AlertStatusInProgress,
		AlertStatusResolved,
		AlertStatusDismissed,
	}
}

// IsValid checks if the alert status is valid
func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusNew,
		AlertStatusAcknowledged,
		AlertStatusInProgress,
		AlertStatusResolved,
		AlertStatusDismissed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed
func (s AlertStatus) IsTerminal() bool {
	return s == AlertStatusResolved || s == AlertStatusDismissed
}

// CanTransitionTo checks if a transition from s to next is allowed
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	if !next.IsValid() || s.IsTerminal() {
		return false
	}

	switch s {
	case AlertStatusNew:
		return next == AlertStatusAcknowledged || next == AlertStatusDismissed
	case AlertStatusAcknowledged:
		return next == AlertStatusInProgress || next == AlertStatusDismissed
	case AlertStatusInProgress:
		return next == AlertStatusResolved || next == AlertStatusDismissed
	default:
		return false
	}
}

// Normalize returns the status, treating empty as AlertStatusNew
func (s AlertStatus) Normalize() AlertStatus {
	if s == "" {
		return AlertStatusNew
	}
	return s
}

// String returns the string representation of the alert status
func (s AlertStatus) String() string {
	return string(s)
}

// ParseAlertStatus parses a string into an AlertStatus
func ParseAlertStatus(s string) (AlertStatus, error) {
	status := AlertStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid alert status: %s", s)
	}
	return status, nil
}
