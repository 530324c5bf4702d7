package model

import (
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

// RiskAlert is the persisted unit of output of a scan: one risk finding
// plus every generated enrichment and a status lifecycle.
type RiskAlert struct {
	ID                  types.AlertID
	SourceType          types.SourceType
	SourceID            string
	SourceName          string
	RiskCategory        types.RiskCategory
	Severity            types.Severity
	RiskScore           int
	TriggerReason       types.RiskTrigger
	RiskDescription     string
	PotentialImpact     string
	MitigationSteps     []MitigationStep
	ComplianceDraft     *ComplianceDraft
	StrategyAdjustments []StrategyAdjustment
	RecommendedTraining []TrainingModule
	Status              types.AlertStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MitigationStep is one ordered step of a generated mitigation plan
type MitigationStep struct {
	Step     string `json:"step"`
	Priority string `json:"priority"`
	Owner    string `json:"owner"`
	Timeline string `json:"timeline"`
	Status   string `json:"status"`
}

// Mitigation step status values
const (
	StepStatusPending = "pending"
	StepStatusDone    = "done"
)
