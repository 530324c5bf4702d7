package model

// MitigationPlan is the structured result of the mitigation generation call
type MitigationPlan struct {
	RiskAnalysis    string           `json:"risk_analysis"`
	PotentialImpact string           `json:"potential_impact"`
	MitigationSteps []MitigationStep `json:"mitigation_steps"`
}

// ComplianceDraft is a generated compliance-document draft. It is only
// produced for compliance-category risks.
type ComplianceDraft struct {
	Title     string         `json:"title"`
	Framework string         `json:"framework"`
	Sections  []DraftSection `json:"sections"`
}

// DraftSection is one section of a compliance draft
type DraftSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// StrategyAdjustment is a single generated change proposal for a strategy
type StrategyAdjustment struct {
	Area       string `json:"area"`
	Adjustment string `json:"adjustment"`
	Rationale  string `json:"rationale"`
}

// TrainingModule is a summary of one recommended training module
type TrainingModule struct {
	Title         string `json:"title"`
	Audience      string `json:"audience"`
	Objective     string `json:"objective"`
	DurationHours int    `json:"duration_hours"`
}
