package prompt_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/service/prompt"
)

var compressNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestCompressStrategy(t *testing.T) {
	t.Run("nil strategy compresses to nil", func(t *testing.T) {
		gt.Value(t, prompt.CompressStrategy(nil, compressNow)).Nil()
	})

	t.Run("bare strategy compresses without error", func(t *testing.T) {
		got := prompt.CompressStrategy(&model.Strategy{
			ID:               "s1",
			OrganizationName: "Acme Corp",
			Platform:         "azure",
		}, compressNow)
		gt.Value(t, got.OrganizationName).Equal("Acme Corp")
		gt.Number(t, got.ProgressPercent).Equal(0)
		gt.Array(t, got.ActiveRisks).Length(0)
		gt.Array(t, got.DelayedMilestones).Length(0)
	})

	t.Run("active risks are capped at five", func(t *testing.T) {
		var risks []model.IdentifiedRisk
		for i := 0; i < 8; i++ {
			risks = append(risks, model.IdentifiedRisk{
				Name:     fmt.Sprintf("risk-%d", i),
				Severity: types.SeverityHigh,
				Status:   model.IdentifiedRiskStatusOpen,
			})
		}
		risks[1].Status = model.IdentifiedRiskStatusResolved

		got := prompt.CompressStrategy(&model.Strategy{
			ID:           "s1",
			RiskAnalysis: &model.RiskAnalysis{IdentifiedRisks: risks},
		}, compressNow)

		gt.Array(t, got.ActiveRisks).Length(5)
		for _, r := range got.ActiveRisks {
			gt.Value(t, r).NotEqual("")
		}
	})

	t.Run("delayed milestones are capped at three", func(t *testing.T) {
		var milestones []model.Milestone
		for i := 0; i < 6; i++ {
			milestones = append(milestones, model.Milestone{
				Name:       fmt.Sprintf("m-%d", i),
				Status:     model.MilestoneStatusPlanned,
				TargetDate: compressNow.AddDate(0, 0, -i-1),
			})
		}

		got := prompt.CompressStrategy(&model.Strategy{
			ID:         "s1",
			Milestones: milestones,
		}, compressNow)

		gt.Array(t, got.DelayedMilestones).Length(3)
	})

	t.Run("progress and score carry over", func(t *testing.T) {
		got := prompt.CompressStrategy(&model.Strategy{
			ID:               "s1",
			ProgressTracking: &model.ProgressTracking{ProgressPercent: 42, LastUpdated: compressNow},
			RiskAnalysis:     &model.RiskAnalysis{RiskScore: 77},
		}, compressNow)
		gt.Number(t, got.ProgressPercent).Equal(42)
		gt.Number(t, got.RiskScore).Equal(77)
	})
}

func TestCompressAssessment(t *testing.T) {
	t.Run("nil assessment compresses to nil", func(t *testing.T) {
		gt.Value(t, prompt.CompressAssessment(nil)).Nil()
	})

	t.Run("key risks are capped at three", func(t *testing.T) {
		a := &model.Assessment{
			ID:               "a1",
			OrganizationName: "Globex",
			MaturityLevel:    model.MaturityIntermediate,
			KeyRisks: []model.KeyRisk{
				{Description: "r1"}, {Description: "r2"},
				{Description: "r3"}, {Description: "r4"},
			},
		}
		got := prompt.CompressAssessment(a)
		gt.Array(t, got.KeyRisks).Length(3)
		gt.Value(t, got.Phase).Equal(model.MaturityIntermediate)
	})

	t.Run("compliance requirements fill remaining slots", func(t *testing.T) {
		a := &model.Assessment{
			ID:                     "a1",
			KeyRisks:               []model.KeyRisk{{Description: "r1"}},
			ComplianceRequirements: []string{"SOC2", "GDPR", "HIPAA"},
		}
		got := prompt.CompressAssessment(a)
		gt.Array(t, got.KeyRisks).Length(3)
		gt.Value(t, got.KeyRisks[0]).Equal("r1")
		gt.Value(t, got.KeyRisks[1]).Equal("SOC2")
	})
}
