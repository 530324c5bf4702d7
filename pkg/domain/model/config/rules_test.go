package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pelletier/go-toml/v2"

	"github.com/adopt-lab/harbinger/pkg/domain/model/config"
)

func TestDefaultRuleConfig(t *testing.T) {
	cfg := config.DefaultRuleConfig()
	gt.NoError(t, cfg.Validate())
	gt.Number(t, cfg.ProgressStallHighDays).Equal(14)
	gt.Number(t, cfg.ProgressStallCriticalDays).Equal(30)
	gt.Number(t, cfg.RiskScoreHigh).Equal(60)
	gt.Number(t, cfg.RiskScoreCritical).Equal(80)
}

func TestRuleConfig_TOMLOverride(t *testing.T) {
	cfg := config.DefaultRuleConfig()

	data := []byte("risk_score_high = 40\nrisk_score_critical = 55\n")
	gt.NoError(t, toml.Unmarshal(data, cfg)).Required()

	// overridden fields change, the rest keep their defaults
	gt.Number(t, cfg.RiskScoreHigh).Equal(40)
	gt.Number(t, cfg.RiskScoreCritical).Equal(55)
	gt.Number(t, cfg.ProgressStallHighDays).Equal(14)
	gt.NoError(t, cfg.Validate())
}

func TestRuleConfig_Validate(t *testing.T) {
	t.Run("critical stall must exceed high stall", func(t *testing.T) {
		cfg := config.DefaultRuleConfig()
		cfg.ProgressStallCriticalDays = cfg.ProgressStallHighDays
		gt.Error(t, cfg.Validate())
	})

	t.Run("risk score thresholds must ascend", func(t *testing.T) {
		cfg := config.DefaultRuleConfig()
		cfg.RiskScoreCritical = cfg.RiskScoreHigh - 1
		gt.Error(t, cfg.Validate())
	})

	t.Run("counts must be positive", func(t *testing.T) {
		cfg := config.DefaultRuleConfig()
		cfg.ComplianceGapCount = 0
		gt.Error(t, cfg.Validate())
	})
}
