package generation

import (
	"context"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
)

// Context carries the compressed entity snapshots a generation call may
// reference. Either field may be nil.
type Context struct {
	Strategy   *model.Essentials `json:"strategy,omitempty"`
	Assessment *model.Essentials `json:"assessment,omitempty"`
}

// Service defines the interface to the generative reasoning backend. Each
// call produces one typed enrichment for a single risk. Implementations
// own prompt construction, response schema enforcement and per-call
// timeouts; retries and provider selection stay behind the LLM client.
type Service interface {
	// GenerateMitigationPlan produces an analysis, impact statement and
	// ordered mitigation steps for the risk
	GenerateMitigationPlan(ctx context.Context, risk model.Risk, genCtx Context) (*model.MitigationPlan, error)

	// GenerateComplianceDraft produces a compliance document draft.
	// Callers only invoke this for compliance-category risks.
	GenerateComplianceDraft(ctx context.Context, risk model.Risk, genCtx Context) (*model.ComplianceDraft, error)

	// GenerateStrategyAdjustments proposes changes to the strategy the
	// risk was found in
	GenerateStrategyAdjustments(ctx context.Context, risk model.Risk, strategy *model.Essentials) ([]model.StrategyAdjustment, error)

	// GenerateTrainingRecommendations proposes training modules, informed
	// by the already-generated mitigation steps
	GenerateTrainingRecommendations(ctx context.Context, risk model.Risk, genCtx Context, steps []model.MitigationStep) ([]model.TrainingModule, error)
}
