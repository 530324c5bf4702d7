package usecase

import (
	"context"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/service/rules"
	"github.com/adopt-lab/harbinger/pkg/utils/errutil"
	"github.com/adopt-lab/harbinger/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxInFlight bounds concurrent generation-backed enrichments so a
// large fleet does not overwhelm the generation service.
const DefaultMaxInFlight = 8

// ScanUseCase runs the two-phase fleet scan: pure rule detection followed
// by concurrent enrichment of every finding.
type ScanUseCase struct {
	evaluator   *rules.Evaluator
	enricher    *EnrichUseCase
	maxInFlight int
}

func NewScanUseCase(evaluator *rules.Evaluator, enricher *EnrichUseCase, maxInFlight int) *ScanUseCase {
	if maxInFlight <= 0 {
		maxInFlight = DefaultMaxInFlight
	}
	return &ScanUseCase{
		evaluator:   evaluator,
		enricher:    enricher,
		maxInFlight: maxInFlight,
	}
}

// finding pairs one detected risk with the entity context it came from
type finding struct {
	risk model.Risk
	sc   ScanContext
}

// RunScan evaluates every strategy (paired with its related assessment
// when one exists) and every unreferenced assessment, then enriches all
// findings concurrently. Output order is stable for a given input:
// strategy-sourced alerts first in input order, then assessment-sourced
// alerts in input order.
//
// Per-item failures are absorbed: a failed enrichment still yields an
// alert with the remaining fields populated. Only structurally invalid
// input (both lists nil) is a hard error.
func (uc *ScanUseCase) RunScan(ctx context.Context, strategies []*model.Strategy, assessments []*model.Assessment) ([]*model.RiskAlert, error) {
	if strategies == nil && assessments == nil {
		return nil, goerr.Wrap(ErrNoScanInput, "both input lists are nil")
	}

	findings := uc.detect(ctx, strategies, assessments)
	if len(findings) == 0 {
		return []*model.RiskAlert{}, nil
	}

	logging.From(ctx).Info("detection phase complete",
		"strategies", len(strategies),
		"assessments", len(assessments),
		"findings", len(findings))

	// Slot results by index so concurrent completion keeps the
	// deterministic detection order.
	results := make([]*model.RiskAlert, len(findings))

	var eg errgroup.Group
	eg.SetLimit(uc.maxInFlight)
	for i, f := range findings {
		eg.Go(func() error {
			alert, err := uc.enricher.Enrich(ctx, f.risk, f.sc)
			if err != nil {
				_ = errutil.Handle(ctx, goerr.Wrap(err, "enrichment degraded",
					goerr.V("trigger", f.risk.Trigger),
					goerr.V("category", f.risk.Category),
				), "risk enrichment failed")
			}
			results[i] = alert
			return nil
		})
	}
	_ = eg.Wait() // goroutines absorb their own errors

	alerts := make([]*model.RiskAlert, 0, len(results))
	for _, alert := range results {
		if alert != nil {
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

// detect is the pure phase: no I/O, deterministic finding order.
func (uc *ScanUseCase) detect(ctx context.Context, strategies []*model.Strategy, assessments []*model.Assessment) []finding {
	assessmentsByID := make(map[types.AssessmentID]*model.Assessment, len(assessments))
	for _, a := range assessments {
		if a != nil {
			assessmentsByID[a.ID] = a
		}
	}

	referenced := make(map[types.AssessmentID]bool)

	var findings []finding
	for _, s := range strategies {
		if s == nil {
			continue
		}
		related := assessmentsByID[s.AssessmentID]
		if related != nil {
			referenced[related.ID] = true
		}

		sc := ScanContext{Strategy: s, Assessment: related}
		for _, risk := range uc.evaluateStrategy(ctx, s, related) {
			findings = append(findings, finding{risk: risk, sc: sc})
		}
	}

	for _, a := range assessments {
		if a == nil || referenced[a.ID] {
			continue
		}
		sc := ScanContext{Assessment: a}
		for _, risk := range uc.evaluateAssessment(ctx, a) {
			findings = append(findings, finding{risk: risk, sc: sc})
		}
	}

	return findings
}

// evaluateStrategy guards rule evaluation against programming defects:
// a panic aborts only this entity's detection, never the whole scan.
func (uc *ScanUseCase) evaluateStrategy(ctx context.Context, s *model.Strategy, related *model.Assessment) (risks []model.Risk) {
	defer func() {
		if r := recover(); r != nil {
			logging.From(ctx).Error("rule evaluation panicked, skipping entity",
				"strategy_id", s.ID, "panic", r)
			risks = nil
		}
	}()
	return uc.evaluator.EvaluateStrategy(s, related)
}

func (uc *ScanUseCase) evaluateAssessment(ctx context.Context, a *model.Assessment) (risks []model.Risk) {
	defer func() {
		if r := recover(); r != nil {
			logging.From(ctx).Error("rule evaluation panicked, skipping entity",
				"assessment_id", a.ID, "panic", r)
			risks = nil
		}
	}()
	return uc.evaluator.EvaluateAssessment(a)
}
