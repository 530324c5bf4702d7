package types

import "fmt"

// Severity represents how serious a detected risk is
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// AllSeverities returns all valid severities
func AllSeverities() []Severity {
	return []Severity{
		SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow,
	}
}

// IsValid checks if the severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical,
		SeverityHigh,
		SeverityMedium,
		SeverityLow:
		return true
	default:
		return false
	}
}

// Score maps severity to the numeric risk score persisted on alerts.
// The mapping is fixed: critical=90, high=70, everything else=50.
func (s Severity) Score() int {
	switch s {
	case SeverityCritical:
		return 90
	case SeverityHigh:
		return 70
	default:
		return 50
	}
}

// String returns the string representation of the severity
func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.IsValid() {
		return "", fmt.Errorf("invalid severity: %s", s)
	}
	return severity, nil
}
