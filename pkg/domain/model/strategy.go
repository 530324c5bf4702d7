package model

import (
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

// Strategy represents a persisted AI adoption plan for one organization
type Strategy struct {
	ID               types.StrategyID
	OrganizationName string
	Platform         string
	Phase            string
	AssessmentID     types.AssessmentID // related assessment, may be empty
	ProgressTracking *ProgressTracking
	RiskAnalysis     *RiskAnalysis
	Milestones       []Milestone
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProgressTracking holds the progress state of a strategy
type ProgressTracking struct {
	ProgressPercent int
	LastUpdated     time.Time
}

// RiskAnalysis holds the strategy's own risk evaluation
type RiskAnalysis struct {
	RiskScore       int
	IdentifiedRisks []IdentifiedRisk
}

// IdentifiedRisk is a single risk item inside a strategy's risk analysis
type IdentifiedRisk struct {
	Name        string
	Description string
	Severity    types.Severity
	Status      string
}

// Identified risk status values
const (
	IdentifiedRiskStatusOpen     = "open"
	IdentifiedRiskStatusResolved = "resolved"
)

// Milestone is a planned deliverable inside a strategy roadmap
type Milestone struct {
	Name       string
	Status     string
	TargetDate time.Time
}

// Milestone status values
const (
	MilestoneStatusPlanned    = "planned"
	MilestoneStatusInProgress = "in_progress"
	MilestoneStatusCompleted  = "completed"
)

// DaysSinceUpdate returns the number of whole days since the last progress
// update. It returns -1 when the strategy has no progress tracking so that
// rules depending on it can skip evaluation.
func (s *Strategy) DaysSinceUpdate(now time.Time) int {
	if s.ProgressTracking == nil || s.ProgressTracking.LastUpdated.IsZero() {
		return -1
	}
	return int(now.Sub(s.ProgressTracking.LastUpdated).Hours() / 24)
}

// DelayedMilestones returns milestones that are past their target date and
// not completed.
func (s *Strategy) DelayedMilestones(now time.Time) []Milestone {
	var delayed []Milestone
	for _, m := range s.Milestones {
		if m.Status == MilestoneStatusCompleted || m.TargetDate.IsZero() {
			continue
		}
		if m.TargetDate.Before(now) {
			delayed = append(delayed, m)
		}
	}
	return delayed
}

// UnresolvedCriticalRisks returns identified risks with critical severity
// that are not yet resolved.
func (s *Strategy) UnresolvedCriticalRisks() []IdentifiedRisk {
	if s.RiskAnalysis == nil {
		return nil
	}
	var risks []IdentifiedRisk
	for _, r := range s.RiskAnalysis.IdentifiedRisks {
		if r.Severity == types.SeverityCritical && r.Status != IdentifiedRiskStatusResolved {
			risks = append(risks, r)
		}
	}
	return risks
}

// RiskScore returns the risk analysis score, or 0 when no analysis exists
func (s *Strategy) RiskScore() int {
	if s.RiskAnalysis == nil {
		return 0
	}
	return s.RiskAnalysis.RiskScore
}
