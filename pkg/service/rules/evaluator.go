package rules

import (
	"fmt"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/model/config"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

// Evaluator inspects strategy and assessment snapshots against static
// threshold rules. Evaluation is a pure function of the input snapshot:
// no I/O, no side effects. Entities missing the data a rule needs simply
// produce no finding for that rule.
type Evaluator struct {
	cfg *config.RuleConfig
	now func() time.Time
}

type Option func(*Evaluator)

// WithClock overrides the time source. Used by tests for deterministic
// day-based rules.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

func New(cfg *config.RuleConfig, opts ...Option) *Evaluator {
	if cfg == nil {
		cfg = config.DefaultRuleConfig()
	}

	e := &Evaluator{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvaluateStrategy evaluates all strategy-level rules, plus the
// assessment-level rules against the related assessment when one is
// paired. Each rule fires independently; one entity may yield multiple
// risks.
func (e *Evaluator) EvaluateStrategy(strategy *model.Strategy, related *model.Assessment) []model.Risk {
	if strategy == nil {
		return nil
	}

	now := e.now()
	var risks []model.Risk

	if risk := e.progressStall(strategy, now); risk != nil {
		risks = append(risks, *risk)
	}
	if risk := e.elevatedRiskScore(strategy.RiskScore(), strategy.RiskAnalysis != nil); risk != nil {
		risks = append(risks, *risk)
	}
	if risk := e.milestoneDelay(strategy, now); risk != nil {
		risks = append(risks, *risk)
	}
	if risk := e.unresolvedCriticalRisks(strategy); risk != nil {
		risks = append(risks, *risk)
	}

	if related != nil {
		risks = append(risks, e.EvaluateAssessment(related)...)
	}

	return risks
}

// EvaluateAssessment evaluates all assessment-level rules
func (e *Evaluator) EvaluateAssessment(assessment *model.Assessment) []model.Risk {
	if assessment == nil {
		return nil
	}

	var risks []model.Risk

	if risk := e.elevatedRiskScore(assessment.AIAssessmentScore, assessment.AIAssessmentScore > 0); risk != nil {
		risks = append(risks, *risk)
	}
	if risk := e.complianceGap(assessment); risk != nil {
		risks = append(risks, *risk)
	}
	if risk := e.maturityMismatch(assessment); risk != nil {
		risks = append(risks, *risk)
	}

	return risks
}

func (e *Evaluator) progressStall(strategy *model.Strategy, now time.Time) *model.Risk {
	days := strategy.DaysSinceUpdate(now)
	if days < 0 || days <= e.cfg.ProgressStallHighDays {
		return nil
	}

	severity := types.SeverityHigh
	if days > e.cfg.ProgressStallCriticalDays {
		severity = types.SeverityCritical
	}

	return &model.Risk{
		Category: types.CategoryOperational,
		Trigger:  types.TriggerProgressStall,
		Severity: severity,
		Details:  fmt.Sprintf("No progress update for %d days", days),
	}
}

func (e *Evaluator) elevatedRiskScore(score int, hasData bool) *model.Risk {
	if !hasData || score < e.cfg.RiskScoreHigh {
		return nil
	}

	severity := types.SeverityHigh
	if score >= e.cfg.RiskScoreCritical {
		severity = types.SeverityCritical
	}

	return &model.Risk{
		Category: types.CategoryTechnical,
		Trigger:  types.TriggerHighRiskScore,
		Severity: severity,
		Details:  fmt.Sprintf("Risk score %d exceeds threshold %d", score, e.cfg.RiskScoreHigh),
	}
}

// milestoneDelay produces at most one finding per entity, not one per
// milestone.
func (e *Evaluator) milestoneDelay(strategy *model.Strategy, now time.Time) *model.Risk {
	delayed := strategy.DelayedMilestones(now)
	if len(delayed) == 0 {
		return nil
	}

	severity := types.SeverityHigh
	if len(delayed) >= e.cfg.MilestoneDelayCritical {
		severity = types.SeverityCritical
	}

	return &model.Risk{
		Category: types.CategoryOperational,
		Trigger:  types.TriggerMilestoneDelay,
		Severity: severity,
		Details:  fmt.Sprintf("%d milestone(s) past their target date", len(delayed)),
	}
}

func (e *Evaluator) unresolvedCriticalRisks(strategy *model.Strategy) *model.Risk {
	unresolved := strategy.UnresolvedCriticalRisks()
	if len(unresolved) == 0 {
		return nil
	}

	return &model.Risk{
		Category: types.CategoryOrganizational,
		Trigger:  types.TriggerUnresolvedCriticalRisk,
		Severity: types.SeverityCritical,
		Details:  fmt.Sprintf("%d critical risk(s) in the strategy risk analysis remain unresolved", len(unresolved)),
	}
}

func (e *Evaluator) complianceGap(assessment *model.Assessment) *model.Risk {
	gaps := assessment.ComplianceKeyRisks()
	if len(gaps) < e.cfg.ComplianceGapCount {
		return nil
	}

	return &model.Risk{
		Category: types.CategoryCompliance,
		Trigger:  types.TriggerComplianceGap,
		Severity: types.SeverityHigh,
		Details:  fmt.Sprintf("%d compliance or regulatory risks identified in the assessment", len(gaps)),
	}
}

func (e *Evaluator) maturityMismatch(assessment *model.Assessment) *model.Risk {
	if assessment.MaturityLevel != model.MaturityBeginner {
		return nil
	}
	if len(assessment.BusinessGoals) <= e.cfg.MaturityMismatchGoals {
		return nil
	}

	return &model.Risk{
		Category: types.CategoryOrganizational,
		Trigger:  types.TriggerMaturityMismatch,
		Severity: types.SeverityMedium,
		Details: fmt.Sprintf("Beginner maturity level with %d business goals suggests over-ambitious scope",
			len(assessment.BusinessGoals)),
	}
}
