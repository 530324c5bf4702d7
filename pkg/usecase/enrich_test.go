package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/service/generation"
	"github.com/adopt-lab/harbinger/pkg/usecase"
)

// mockGenerationService is a mock generation.Service with per-call counters
type mockGenerationService struct {
	planCalls     atomic.Int64
	draftCalls    atomic.Int64
	adjustCalls   atomic.Int64
	trainingCalls atomic.Int64

	planFn     func(ctx context.Context, risk model.Risk, genCtx generation.Context) (*model.MitigationPlan, error)
	draftFn    func(ctx context.Context, risk model.Risk, genCtx generation.Context) (*model.ComplianceDraft, error)
	adjustFn   func(ctx context.Context, risk model.Risk, strategy *model.Essentials) ([]model.StrategyAdjustment, error)
	trainingFn func(ctx context.Context, risk model.Risk, genCtx generation.Context, steps []model.MitigationStep) ([]model.TrainingModule, error)
}

func (m *mockGenerationService) GenerateMitigationPlan(ctx context.Context, risk model.Risk, genCtx generation.Context) (*model.MitigationPlan, error) {
	m.planCalls.Add(1)
	if m.planFn != nil {
		return m.planFn(ctx, risk, genCtx)
	}
	return &model.MitigationPlan{
		RiskAnalysis:    "Generated analysis",
		PotentialImpact: "Generated impact",
		MitigationSteps: []model.MitigationStep{
			{Step: "Do the thing", Priority: "high", Status: model.StepStatusPending},
		},
	}, nil
}

func (m *mockGenerationService) GenerateComplianceDraft(ctx context.Context, risk model.Risk, genCtx generation.Context) (*model.ComplianceDraft, error) {
	m.draftCalls.Add(1)
	if m.draftFn != nil {
		return m.draftFn(ctx, risk, genCtx)
	}
	return &model.ComplianceDraft{Title: "Draft", Framework: "GDPR"}, nil
}

func (m *mockGenerationService) GenerateStrategyAdjustments(ctx context.Context, risk model.Risk, strategy *model.Essentials) ([]model.StrategyAdjustment, error) {
	m.adjustCalls.Add(1)
	if m.adjustFn != nil {
		return m.adjustFn(ctx, risk, strategy)
	}
	return []model.StrategyAdjustment{{Area: "timeline", Adjustment: "extend"}}, nil
}

func (m *mockGenerationService) GenerateTrainingRecommendations(ctx context.Context, risk model.Risk, genCtx generation.Context, steps []model.MitigationStep) ([]model.TrainingModule, error) {
	m.trainingCalls.Add(1)
	if m.trainingFn != nil {
		return m.trainingFn(ctx, risk, genCtx, steps)
	}
	return []model.TrainingModule{{Title: "AI Basics", DurationHours: 2}}, nil
}

var _ generation.Service = &mockGenerationService{}

func testStrategy() *model.Strategy {
	return &model.Strategy{
		ID:               "s1",
		OrganizationName: "Acme Corp",
		Platform:         "azure",
	}
}

func testRisk(category types.RiskCategory) model.Risk {
	return model.Risk{
		Category: category,
		Trigger:  types.TriggerProgressStall,
		Severity: types.SeverityHigh,
		Details:  "fallback detail",
	}
}

func TestEnrich(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles a full alert for a strategy risk", func(t *testing.T) {
		gen := &mockGenerationService{}
		uc := usecase.NewEnrichUseCase(gen, nil)

		alert, err := uc.Enrich(ctx, testRisk(types.CategoryOperational), usecase.ScanContext{Strategy: testStrategy()})
		gt.NoError(t, err).Required()

		gt.Value(t, alert.SourceType).Equal(types.SourceTypeStrategy)
		gt.Value(t, alert.SourceID).Equal("s1")
		gt.Value(t, alert.SourceName).Equal("Acme Corp")
		gt.Value(t, alert.Status).Equal(types.AlertStatusNew)
		gt.Value(t, alert.RiskDescription).Equal("Generated analysis")
		gt.Value(t, alert.PotentialImpact).Equal("Generated impact")
		gt.Array(t, alert.MitigationSteps).Length(1)
		gt.Array(t, alert.StrategyAdjustments).Length(1)
		gt.Array(t, alert.RecommendedTraining).Length(1)
		gt.Value(t, alert.ID).NotEqual(types.AlertID(""))
	})

	t.Run("severity maps to a fixed risk score", func(t *testing.T) {
		gen := &mockGenerationService{}
		uc := usecase.NewEnrichUseCase(gen, nil)

		tests := []struct {
			severity types.Severity
			score    int
		}{
			{types.SeverityCritical, 90},
			{types.SeverityHigh, 70},
			{types.SeverityMedium, 50},
			{types.SeverityLow, 50},
		}
		for _, tt := range tests {
			risk := testRisk(types.CategoryOperational)
			risk.Severity = tt.severity
			alert, err := uc.Enrich(ctx, risk, usecase.ScanContext{Strategy: testStrategy()})
			gt.NoError(t, err).Required()
			gt.Number(t, alert.RiskScore).Equal(tt.score)
		}
	})

	t.Run("compliance draft only for compliance risks", func(t *testing.T) {
		gen := &mockGenerationService{}
		uc := usecase.NewEnrichUseCase(gen, nil)

		alert, err := uc.Enrich(ctx, testRisk(types.CategoryTechnical), usecase.ScanContext{Strategy: testStrategy()})
		gt.NoError(t, err).Required()
		gt.Value(t, alert.ComplianceDraft).Nil()
		gt.Number(t, gen.draftCalls.Load()).Equal(int64(0))

		alert, err = uc.Enrich(ctx, testRisk(types.CategoryCompliance), usecase.ScanContext{Strategy: testStrategy()})
		gt.NoError(t, err).Required()
		gt.Value(t, alert.ComplianceDraft).NotNil()
		gt.Number(t, gen.draftCalls.Load()).Equal(int64(1))
	})

	t.Run("no strategy adjustments for assessment-only context", func(t *testing.T) {
		gen := &mockGenerationService{}
		uc := usecase.NewEnrichUseCase(gen, nil)

		a := &model.Assessment{ID: "a1", OrganizationName: "Globex"}
		alert, err := uc.Enrich(ctx, testRisk(types.CategoryOrganizational), usecase.ScanContext{Assessment: a})
		gt.NoError(t, err).Required()

		gt.Value(t, alert.SourceType).Equal(types.SourceTypeAssessment)
		gt.Value(t, alert.SourceName).Equal("Globex")
		gt.Array(t, alert.StrategyAdjustments).Length(0)
		gt.Number(t, gen.adjustCalls.Load()).Equal(int64(0))
	})

	t.Run("no training for financial risks", func(t *testing.T) {
		gen := &mockGenerationService{}
		uc := usecase.NewEnrichUseCase(gen, nil)

		alert, err := uc.Enrich(ctx, testRisk(types.CategoryFinancial), usecase.ScanContext{Strategy: testStrategy()})
		gt.NoError(t, err).Required()
		gt.Array(t, alert.RecommendedTraining).Length(0)
		gt.Number(t, gen.trainingCalls.Load()).Equal(int64(0))
	})

	t.Run("mitigation failure degrades without losing the alert", func(t *testing.T) {
		gen := &mockGenerationService{
			planFn: func(ctx context.Context, risk model.Risk, genCtx generation.Context) (*model.MitigationPlan, error) {
				return nil, goerr.New("generation backend down")
			},
		}
		uc := usecase.NewEnrichUseCase(gen, nil)

		alert, err := uc.Enrich(ctx, testRisk(types.CategoryOperational), usecase.ScanContext{Strategy: testStrategy()})
		gt.Error(t, err)
		gt.Value(t, alert).NotNil()

		gt.Array(t, alert.MitigationSteps).Length(0)
		gt.Value(t, alert.RiskDescription).Equal("fallback detail")
		gt.Array(t, alert.StrategyAdjustments).Length(1)
		// training depends on the failed plan, so it never runs
		gt.Number(t, gen.trainingCalls.Load()).Equal(int64(0))
	})

	t.Run("identical enrichments are served from cache", func(t *testing.T) {
		gen := &mockGenerationService{}
		uc := usecase.NewEnrichUseCase(gen, nil)

		risk := testRisk(types.CategoryOperational)
		sc := usecase.ScanContext{Strategy: testStrategy()}

		_, err := uc.Enrich(ctx, risk, sc)
		gt.NoError(t, err).Required()
		_, err = uc.Enrich(ctx, risk, sc)
		gt.NoError(t, err).Required()

		gt.Number(t, gen.planCalls.Load()).Equal(int64(1))
		gt.Number(t, gen.adjustCalls.Load()).Equal(int64(1))
		gt.Number(t, gen.trainingCalls.Load()).Equal(int64(1))
	})

	t.Run("nil generation service is a hard error", func(t *testing.T) {
		uc := usecase.NewEnrichUseCase(nil, nil)

		_, err := uc.Enrich(ctx, testRisk(types.CategoryOperational), usecase.ScanContext{Strategy: testStrategy()})
		gt.Error(t, err).Is(usecase.ErrGenerationRequired)
	})

	t.Run("empty scan context is a hard error", func(t *testing.T) {
		uc := usecase.NewEnrichUseCase(&mockGenerationService{}, nil)

		_, err := uc.Enrich(ctx, testRisk(types.CategoryOperational), usecase.ScanContext{})
		gt.Error(t, err)
	})
}
