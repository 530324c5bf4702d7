package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/repository/memory"
)

func newTestAssessment() *model.Assessment {
	return &model.Assessment{
		ID:                types.AssessmentID(uuid.NewString()),
		OrganizationName:  "Globex",
		Platform:          "gcp",
		MaturityLevel:     model.MaturityBeginner,
		AIAssessmentScore: 72,
		KeyRisks: []model.KeyRisk{
			{Description: "GDPR exposure", Tags: []string{"compliance"}},
			{Description: "skills shortage", Tags: []string{"people"}},
		},
		ComplianceRequirements: []string{"SOC2", "GDPR"},
		BusinessGoals:          []string{"automate support", "reduce costs"},
	}
}

func runAssessmentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip the assessment", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := newTestAssessment()
		created, err := repo.Assessment().Create(ctx, a)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(a.ID)

		got, err := repo.Assessment().Get(ctx, a.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.MaturityLevel).Equal(model.MaturityBeginner)
		gt.Number(t, got.AIAssessmentScore).Equal(72)
		gt.Array(t, got.KeyRisks).Length(2)
		gt.Array(t, got.KeyRisks[0].Tags).Length(1)
		gt.Array(t, got.ComplianceRequirements).Length(2)
		gt.Array(t, got.BusinessGoals).Length(2)
	})

	t.Run("duplicate IDs are rejected", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := newTestAssessment()
		_, err := repo.Assessment().Create(ctx, a)
		gt.NoError(t, err).Required()

		_, err = repo.Assessment().Create(ctx, a)
		gt.Error(t, err)
	})

	t.Run("List includes created assessments", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		a := newTestAssessment()
		_, err := repo.Assessment().Create(ctx, a)
		gt.NoError(t, err).Required()

		listed, err := repo.Assessment().List(ctx)
		gt.NoError(t, err).Required()

		found := false
		for _, got := range listed {
			if got.ID == a.ID {
				found = true
			}
		}
		gt.Bool(t, found).True()
	})
}

func TestMemoryAssessmentRepository(t *testing.T) {
	runAssessmentRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreAssessmentRepository(t *testing.T) {
	runAssessmentRepositoryTest(t, newFirestoreRepository)
}
