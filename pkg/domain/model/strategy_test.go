package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestStrategy_DaysSinceUpdate(t *testing.T) {
	t.Run("no tracking yields -1", func(t *testing.T) {
		s := &model.Strategy{}
		gt.Number(t, s.DaysSinceUpdate(now)).Equal(-1)

		s.ProgressTracking = &model.ProgressTracking{}
		gt.Number(t, s.DaysSinceUpdate(now)).Equal(-1)
	})

	t.Run("whole days since last update", func(t *testing.T) {
		s := &model.Strategy{
			ProgressTracking: &model.ProgressTracking{
				LastUpdated: now.Add(-36 * time.Hour),
			},
		}
		gt.Number(t, s.DaysSinceUpdate(now)).Equal(1)
	})
}

func TestStrategy_DelayedMilestones(t *testing.T) {
	s := &model.Strategy{
		Milestones: []model.Milestone{
			{Name: "done late", Status: model.MilestoneStatusCompleted, TargetDate: now.AddDate(0, 0, -10)},
			{Name: "overdue", Status: model.MilestoneStatusPlanned, TargetDate: now.AddDate(0, 0, -1)},
			{Name: "upcoming", Status: model.MilestoneStatusPlanned, TargetDate: now.AddDate(0, 0, 7)},
			{Name: "undated", Status: model.MilestoneStatusInProgress},
		},
	}

	delayed := s.DelayedMilestones(now)
	gt.Array(t, delayed).Length(1)
	gt.Value(t, delayed[0].Name).Equal("overdue")
}

func TestStrategy_UnresolvedCriticalRisks(t *testing.T) {
	t.Run("no analysis yields none", func(t *testing.T) {
		s := &model.Strategy{}
		gt.Array(t, s.UnresolvedCriticalRisks()).Length(0)
	})

	t.Run("only open criticals count", func(t *testing.T) {
		s := &model.Strategy{
			RiskAnalysis: &model.RiskAnalysis{
				IdentifiedRisks: []model.IdentifiedRisk{
					{Name: "open critical", Severity: types.SeverityCritical, Status: model.IdentifiedRiskStatusOpen},
					{Name: "resolved critical", Severity: types.SeverityCritical, Status: model.IdentifiedRiskStatusResolved},
					{Name: "open high", Severity: types.SeverityHigh, Status: model.IdentifiedRiskStatusOpen},
				},
			},
		}
		unresolved := s.UnresolvedCriticalRisks()
		gt.Array(t, unresolved).Length(1)
		gt.Value(t, unresolved[0].Name).Equal("open critical")
	})
}

func TestAssessment_ComplianceKeyRisks(t *testing.T) {
	a := &model.Assessment{
		KeyRisks: []model.KeyRisk{
			{Description: "GDPR exposure", Tags: []string{"compliance"}},
			{Description: "audit trail", Tags: []string{"Regulatory", "audit"}},
			{Description: "skills shortage", Tags: []string{"people"}},
			{Description: "untagged risk"},
		},
	}

	risks := a.ComplianceKeyRisks()
	gt.Array(t, risks).Length(2)
	gt.Value(t, risks[0].Description).Equal("GDPR exposure")
	gt.Value(t, risks[1].Description).Equal("audit trail")
}
