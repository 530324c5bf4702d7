package prompt

import (
	"fmt"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
)

// List caps for compressed context. Fixed regardless of input size to
// bound prompt size.
const (
	maxActiveRisks       = 5
	maxDelayedMilestones = 3
	maxKeyRisks          = 3
)

// CompressStrategy projects a strategy down to the essentials embedded in
// generation prompts. Missing sub-structures become zero values, never an
// error.
func CompressStrategy(strategy *model.Strategy, now time.Time) *model.Essentials {
	if strategy == nil {
		return nil
	}

	essentials := &model.Essentials{
		OrganizationName: strategy.OrganizationName,
		Platform:         strategy.Platform,
		Phase:            strategy.Phase,
		RiskScore:        strategy.RiskScore(),
	}

	if strategy.ProgressTracking != nil {
		essentials.ProgressPercent = strategy.ProgressTracking.ProgressPercent
	}

	if strategy.RiskAnalysis != nil {
		for _, risk := range strategy.RiskAnalysis.IdentifiedRisks {
			if risk.Status == model.IdentifiedRiskStatusResolved {
				continue
			}
			essentials.ActiveRisks = append(essentials.ActiveRisks,
				fmt.Sprintf("%s (%s): %s", risk.Name, risk.Severity, risk.Description))
			if len(essentials.ActiveRisks) >= maxActiveRisks {
				break
			}
		}
	}

	for _, m := range strategy.DelayedMilestones(now) {
		essentials.DelayedMilestones = append(essentials.DelayedMilestones,
			fmt.Sprintf("%s (target %s)", m.Name, m.TargetDate.Format("2006-01-02")))
		if len(essentials.DelayedMilestones) >= maxDelayedMilestones {
			break
		}
	}

	return essentials
}

// CompressAssessment projects an assessment down to the essentials
// embedded in generation prompts.
func CompressAssessment(assessment *model.Assessment) *model.Essentials {
	if assessment == nil {
		return nil
	}

	essentials := &model.Essentials{
		OrganizationName: assessment.OrganizationName,
		Platform:         assessment.Platform,
		Phase:            assessment.MaturityLevel,
		RiskScore:        assessment.AIAssessmentScore,
	}

	for _, risk := range assessment.KeyRisks {
		essentials.KeyRisks = append(essentials.KeyRisks, risk.Description)
		if len(essentials.KeyRisks) >= maxKeyRisks {
			break
		}
	}
	if len(essentials.KeyRisks) < maxKeyRisks {
		for _, req := range assessment.ComplianceRequirements {
			essentials.KeyRisks = append(essentials.KeyRisks, req)
			if len(essentials.KeyRisks) >= maxKeyRisks {
				break
			}
		}
	}

	return essentials
}
