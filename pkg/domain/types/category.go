package types

import "fmt"

// RiskCategory classifies the domain a detected risk belongs to
type RiskCategory string

const (
	CategoryTechnical      RiskCategory = "technical"
	CategoryOrganizational RiskCategory = "organizational"
	CategoryFinancial      RiskCategory = "financial"
	CategoryCompliance     RiskCategory = "compliance"
	CategoryOperational    RiskCategory = "operational"
)

// AllRiskCategories returns all valid risk categories
func AllRiskCategories() []RiskCategory {
	return []RiskCategory{
		CategoryTechnical,
		CategoryOrganizational,
		CategoryFinancial,
		CategoryCompliance,
		CategoryOperational,
	}
}

// IsValid checks if the risk category is valid
func (c RiskCategory) IsValid() bool {
	switch c {
	case CategoryTechnical,
		CategoryOrganizational,
		CategoryFinancial,
		CategoryCompliance,
		CategoryOperational:
		return true
	default:
		return false
	}
}

// TrainingEligible reports whether training recommendations are generated
// for risks of this category.
func (c RiskCategory) TrainingEligible() bool {
	switch c {
	case CategoryCompliance,
		CategoryOrganizational,
		CategoryOperational,
		CategoryTechnical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk category
func (c RiskCategory) String() string {
	return string(c)
}

// ParseRiskCategory parses a string into a RiskCategory
func ParseRiskCategory(s string) (RiskCategory, error) {
	category := RiskCategory(s)
	if !category.IsValid() {
		return "", fmt.Errorf("invalid risk category: %s", s)
	}
	return category, nil
}
