package model

import (
	"strings"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

// Assessment represents a persisted organizational AI readiness evaluation
type Assessment struct {
	ID                     types.AssessmentID
	OrganizationName       string
	Platform               string
	MaturityLevel          string
	AIAssessmentScore      int
	KeyRisks               []KeyRisk
	ComplianceRequirements []string
	BusinessGoals          []string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// KeyRisk is a single risk item identified during an assessment
type KeyRisk struct {
	Description string
	Tags        []string
}

// Maturity levels
const (
	MaturityBeginner     = "beginner"
	MaturityIntermediate = "intermediate"
	MaturityAdvanced     = "advanced"
)

// Tags that mark a key risk as compliance-related
var complianceTags = []string{"compliance", "regulatory"}

// ComplianceKeyRisks returns key risks tagged as compliance or regulatory
func (a *Assessment) ComplianceKeyRisks() []KeyRisk {
	var risks []KeyRisk
	for _, r := range a.KeyRisks {
		for _, tag := range r.Tags {
			if isComplianceTag(tag) {
				risks = append(risks, r)
				break
			}
		}
	}
	return risks
}

func isComplianceTag(tag string) bool {
	for _, t := range complianceTags {
		if strings.EqualFold(tag, t) {
			return true
		}
	}
	return false
}
