package model

import "github.com/adopt-lab/harbinger/pkg/domain/types"

// Risk is a single finding produced by rule evaluation. It is ephemeral:
// created and consumed within one scan pass, never persisted directly.
type Risk struct {
	Category types.RiskCategory
	Trigger  types.RiskTrigger
	Severity types.Severity
	Details  string
}
