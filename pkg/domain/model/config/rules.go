package config

import "github.com/m-mizutani/goerr/v2"

// RuleConfig holds the threshold values used by rule evaluation. The zero
// value is not usable; construct it with DefaultRuleConfig and override
// fields from a TOML file when one is provided.
type RuleConfig struct {
	ProgressStallHighDays     int `toml:"progress_stall_high_days"`
	ProgressStallCriticalDays int `toml:"progress_stall_critical_days"`
	RiskScoreHigh             int `toml:"risk_score_high"`
	RiskScoreCritical         int `toml:"risk_score_critical"`
	MilestoneDelayCritical    int `toml:"milestone_delay_critical"`
	ComplianceGapCount        int `toml:"compliance_gap_count"`
	MaturityMismatchGoals     int `toml:"maturity_mismatch_goals"`
}

// DefaultRuleConfig returns the built-in thresholds
func DefaultRuleConfig() *RuleConfig {
	return &RuleConfig{
		ProgressStallHighDays:     14,
		ProgressStallCriticalDays: 30,
		RiskScoreHigh:             60,
		RiskScoreCritical:         80,
		MilestoneDelayCritical:    2,
		ComplianceGapCount:        3,
		MaturityMismatchGoals:     3,
	}
}

// Validate checks that the thresholds are internally consistent
func (c *RuleConfig) Validate() error {
	if c.ProgressStallHighDays <= 0 || c.ProgressStallCriticalDays <= 0 {
		return goerr.New("progress stall thresholds must be positive",
			goerr.V("high_days", c.ProgressStallHighDays),
			goerr.V("critical_days", c.ProgressStallCriticalDays))
	}
	if c.ProgressStallCriticalDays <= c.ProgressStallHighDays {
		return goerr.New("progress stall critical threshold must exceed high threshold",
			goerr.V("high_days", c.ProgressStallHighDays),
			goerr.V("critical_days", c.ProgressStallCriticalDays))
	}
	if c.RiskScoreHigh <= 0 || c.RiskScoreCritical <= c.RiskScoreHigh {
		return goerr.New("risk score thresholds must be positive and ascending",
			goerr.V("high", c.RiskScoreHigh),
			goerr.V("critical", c.RiskScoreCritical))
	}
	if c.MilestoneDelayCritical <= 0 {
		return goerr.New("milestone delay critical count must be positive",
			goerr.V("count", c.MilestoneDelayCritical))
	}
	if c.ComplianceGapCount <= 0 {
		return goerr.New("compliance gap count must be positive",
			goerr.V("count", c.ComplianceGapCount))
	}
	if c.MaturityMismatchGoals <= 0 {
		return goerr.New("maturity mismatch goal count must be positive",
			goerr.V("count", c.MaturityMismatchGoals))
	}
	return nil
}
