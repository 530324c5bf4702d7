package types

import "fmt"

// SourceType identifies which kind of entity an alert originated from
type SourceType string

const (
	SourceTypeStrategy   SourceType = "strategy"
	SourceTypeAssessment SourceType = "assessment"
)

// IsValid checks if the source type is valid
func (s SourceType) IsValid() bool {
	switch s {
	case SourceTypeStrategy, SourceTypeAssessment:
		return true
	default:
		return false
	}
}

// String returns the string representation of the source type
func (s SourceType) String() string {
	return string(s)
}

// ParseSourceType parses a string into a SourceType
func ParseSourceType(s string) (SourceType, error) {
	sourceType := SourceType(s)
	if !sourceType.IsValid() {
		return "", fmt.Errorf("invalid source type: %s", s)
	}
	return sourceType, nil
}
