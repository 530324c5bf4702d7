package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/repository/memory"
)

func newTestStrategy() *model.Strategy {
	return &model.Strategy{
		ID:               types.StrategyID(uuid.NewString()),
		OrganizationName: "Acme Corp",
		Platform:         "azure",
		Phase:            "rollout",
		AssessmentID:     "a1",
		ProgressTracking: &model.ProgressTracking{
			ProgressPercent: 35,
			LastUpdated:     time.Now().UTC().AddDate(0, 0, -5),
		},
		RiskAnalysis: &model.RiskAnalysis{
			RiskScore: 85,
			IdentifiedRisks: []model.IdentifiedRisk{
				{Name: "adoption lag", Severity: types.SeverityHigh, Status: model.IdentifiedRiskStatusOpen},
			},
		},
		Milestones: []model.Milestone{
			{Name: "pilot", Status: model.MilestoneStatusPlanned, TargetDate: time.Now().UTC().AddDate(0, 1, 0)},
		},
	}
}

func runStrategyRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip nested structures", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s := newTestStrategy()
		created, err := repo.Strategy().Create(ctx, s)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(s.ID)

		got, err := repo.Strategy().Get(ctx, s.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.OrganizationName).Equal("Acme Corp")
		gt.Value(t, got.AssessmentID).Equal(types.AssessmentID("a1"))
		gt.Value(t, got.ProgressTracking).NotNil()
		gt.Number(t, got.ProgressTracking.ProgressPercent).Equal(35)
		gt.Value(t, got.RiskAnalysis).NotNil()
		gt.Array(t, got.RiskAnalysis.IdentifiedRisks).Length(1)
		gt.Array(t, got.Milestones).Length(1)
	})

	t.Run("Get unknown strategy fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Strategy().Get(ctx, types.StrategyID(uuid.NewString()))
		gt.Error(t, err)
	})

	t.Run("List returns strategies in creation order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		s1 := newTestStrategy()
		s2 := newTestStrategy()
		s1.CreatedAt = time.Now().UTC().Add(-time.Hour)
		s2.CreatedAt = time.Now().UTC()

		_, err := repo.Strategy().Create(ctx, s1)
		gt.NoError(t, err).Required()
		_, err = repo.Strategy().Create(ctx, s2)
		gt.NoError(t, err).Required()

		listed, err := repo.Strategy().List(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, len(listed)).GreaterOrEqual(2)

		var idx1, idx2 = -1, -1
		for i, s := range listed {
			switch s.ID {
			case s1.ID:
				idx1 = i
			case s2.ID:
				idx2 = i
			}
		}
		gt.Number(t, idx1).GreaterOrEqual(0)
		gt.Number(t, idx2).GreaterOrEqual(0)
		gt.Bool(t, idx1 < idx2).True()
	})
}

func TestMemoryStrategyRepository(t *testing.T) {
	runStrategyRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreStrategyRepository(t *testing.T) {
	runStrategyRepositoryTest(t, newFirestoreRepository)
}
