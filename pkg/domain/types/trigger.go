package types

// RiskTrigger identifies the threshold rule that produced a risk finding
type RiskTrigger string

const (
	TriggerProgressStall          RiskTrigger = "progress_stall"
	TriggerHighRiskScore          RiskTrigger = "high_risk_score"
	TriggerMilestoneDelay         RiskTrigger = "milestone_delay"
	TriggerUnresolvedCriticalRisk RiskTrigger = "unresolved_critical_risk"
	TriggerComplianceGap          RiskTrigger = "compliance_gap"
	TriggerMaturityMismatch       RiskTrigger = "maturity_mismatch"
)

// String returns the string representation of the risk trigger
func (t RiskTrigger) String() string {
	return string(t)
}
