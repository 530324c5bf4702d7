package model

// Essentials is a small, stable-shaped projection of a Strategy or
// Assessment, safe to embed in a generation prompt. It is recomputed per
// call and never persisted. All list fields are capped at compression time
// to bound prompt size.
type Essentials struct {
	OrganizationName  string   `json:"organization_name"`
	Platform          string   `json:"platform"`
	Phase             string   `json:"phase,omitempty"`
	ProgressPercent   int      `json:"progress_percent"`
	RiskScore         int      `json:"risk_score"`
	ActiveRisks       []string `json:"active_risks,omitempty"`       // up to 5
	DelayedMilestones []string `json:"delayed_milestones,omitempty"` // up to 3
	KeyRisks          []string `json:"key_risks,omitempty"`          // up to 3
}
