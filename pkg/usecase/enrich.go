package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/service/cache"
	"github.com/adopt-lab/harbinger/pkg/service/generation"
	"github.com/adopt-lab/harbinger/pkg/service/prompt"
	"github.com/adopt-lab/harbinger/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/singleflight"
)

// TrainingCacheTTL is the longer memoization window for training
// recommendations; they change less often than the other enrichments.
const TrainingCacheTTL = 10 * time.Minute

// ScanContext is the entity pair a risk was found in. Assessment-sourced
// findings carry a nil Strategy.
type ScanContext struct {
	Strategy   *model.Strategy
	Assessment *model.Assessment
}

// EnrichUseCase builds one RiskAlert from one Risk by fanning out
// generation calls through the cache.
type EnrichUseCase struct {
	gen    generation.Service
	cache  cache.Cache
	flight singleflight.Group
	now    func() time.Time
}

func NewEnrichUseCase(gen generation.Service, resultCache cache.Cache) *EnrichUseCase {
	if resultCache == nil {
		resultCache = cache.NewMemoryCache()
	}
	return &EnrichUseCase{
		gen:   gen,
		cache: resultCache,
		now:   time.Now,
	}
}

// Enrich assembles a RiskAlert for the risk. The three primary generation
// calls (mitigation plan, compliance draft, strategy adjustments) run
// concurrently; training recommendations follow the mitigation plan
// because they depend on its steps.
//
// A failed generation call never fails the alert: the affected field stays
// empty and the error is returned alongside the alert so the scan
// coordinator can log it. The returned alert is nil only when the inputs
// themselves are unusable.
func (uc *EnrichUseCase) Enrich(ctx context.Context, risk model.Risk, sc ScanContext) (*model.RiskAlert, error) {
	if uc.gen == nil {
		return nil, goerr.Wrap(ErrGenerationRequired, "cannot enrich risk")
	}
	if sc.Strategy == nil && sc.Assessment == nil {
		return nil, goerr.New("scan context requires a strategy or an assessment",
			goerr.V("trigger", risk.Trigger))
	}

	genCtx := generation.Context{
		Strategy:   prompt.CompressStrategy(sc.Strategy, uc.now()),
		Assessment: prompt.CompressAssessment(sc.Assessment),
	}

	var (
		wg          sync.WaitGroup
		plan        *model.MitigationPlan
		draft       *model.ComplianceDraft
		adjustments []model.StrategyAdjustment
		planErr     error
		draftErr    error
		adjustErr   error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		plan, planErr = cachedCall(ctx, uc, "mitigation_plan", callPayload{Risk: risk, Context: genCtx}, cache.DefaultTTL,
			func(ctx context.Context) (*model.MitigationPlan, error) {
				return uc.gen.GenerateMitigationPlan(ctx, risk, genCtx)
			})
	}()

	// Compliance drafts only exist for compliance-category risks; other
	// categories short-circuit without a generation call.
	if risk.Category == types.CategoryCompliance {
		wg.Add(1)
		go func() {
			defer wg.Done()
			draft, draftErr = cachedCall(ctx, uc, "compliance_draft", callPayload{Risk: risk, Context: genCtx}, cache.DefaultTTL,
				func(ctx context.Context) (*model.ComplianceDraft, error) {
					return uc.gen.GenerateComplianceDraft(ctx, risk, genCtx)
				})
		}()
	}

	// Strategy adjustments only make sense when a strategy is present;
	// assessment-only alerts get an empty list.
	if genCtx.Strategy != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adjustments, adjustErr = cachedCall(ctx, uc, "strategy_adjustments", callPayload{Risk: risk, Context: genCtx}, cache.DefaultTTL,
				func(ctx context.Context) ([]model.StrategyAdjustment, error) {
					return uc.gen.GenerateStrategyAdjustments(ctx, risk, genCtx.Strategy)
				})
		}()
	}

	wg.Wait()

	// Training recommendations depend on the mitigation steps, so they run
	// after the join, and only for eligible categories.
	var training []model.TrainingModule
	var trainingErr error
	if plan != nil && risk.Category.TrainingEligible() {
		training, trainingErr = cachedCall(ctx, uc, "training_recommendations",
			callPayload{Risk: risk, Context: genCtx, Steps: plan.MitigationSteps}, TrainingCacheTTL,
			func(ctx context.Context) ([]model.TrainingModule, error) {
				return uc.gen.GenerateTrainingRecommendations(ctx, risk, genCtx, plan.MitigationSteps)
			})
	}

	alert := uc.assemble(risk, sc, plan, draft, adjustments, training)

	return alert, errors.Join(planErr, draftErr, adjustErr, trainingErr)
}

func (uc *EnrichUseCase) assemble(risk model.Risk, sc ScanContext,
	plan *model.MitigationPlan, draft *model.ComplianceDraft,
	adjustments []model.StrategyAdjustment, training []model.TrainingModule) *model.RiskAlert {

	alert := &model.RiskAlert{
		ID:                  types.NewAlertID(),
		RiskCategory:        risk.Category,
		Severity:            risk.Severity,
		RiskScore:           risk.Severity.Score(),
		TriggerReason:       risk.Trigger,
		RiskDescription:     risk.Details,
		MitigationSteps:     []model.MitigationStep{},
		ComplianceDraft:     draft,
		StrategyAdjustments: []model.StrategyAdjustment{},
		RecommendedTraining: []model.TrainingModule{},
		Status:              types.AlertStatusNew,
		CreatedAt:           uc.now().UTC(),
	}

	if sc.Strategy != nil {
		alert.SourceType = types.SourceTypeStrategy
		alert.SourceID = sc.Strategy.ID.String()
		alert.SourceName = sc.Strategy.OrganizationName
	} else {
		alert.SourceType = types.SourceTypeAssessment
		alert.SourceID = sc.Assessment.ID.String()
		alert.SourceName = sc.Assessment.OrganizationName
	}

	if plan != nil {
		if plan.RiskAnalysis != "" {
			alert.RiskDescription = plan.RiskAnalysis
		}
		alert.PotentialImpact = plan.PotentialImpact
		alert.MitigationSteps = make([]model.MitigationStep, len(plan.MitigationSteps))
		for i, step := range plan.MitigationSteps {
			if step.Status == "" {
				step.Status = model.StepStatusPending
			}
			alert.MitigationSteps[i] = step
		}
	}
	if adjustments != nil {
		alert.StrategyAdjustments = adjustments
	}
	if training != nil {
		alert.RecommendedTraining = training
	}

	return alert
}

// callPayload is the canonical cache key input for one generation call
type callPayload struct {
	Risk    model.Risk             `json:"risk"`
	Context generation.Context     `json:"context"`
	Steps   []model.MitigationStep `json:"steps,omitempty"`
}

// cachedCall memoizes fn behind the result cache. Identical in-flight
// calls are deduplicated via singleflight. A cached value that fails to
// deserialize is treated as a miss and recomputed.
func cachedCall[T any](ctx context.Context, uc *EnrichUseCase, op string, payload callPayload, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	key := cache.GenerateKey(op, payload)

	if data, ok := uc.cache.Get(ctx, key); ok {
		var value T
		if err := json.Unmarshal(data, &value); err == nil {
			return value, nil
		}
		logging.From(ctx).Warn("discarding corrupted cache entry", "op", op, "key", key)
	}

	result, err, _ := uc.flight.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(value); err == nil {
			uc.cache.Set(ctx, key, data, ttl)
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := result.(T)
	if !ok {
		return zero, goerr.New("unexpected cached result type", goerr.V("op", op))
	}
	return value, nil
}
