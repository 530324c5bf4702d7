package generation

import (
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/service/prompt"
)

const systemPrompt = "You are an enterprise AI adoption advisor. " +
	"You analyze risks detected in AI adoption strategies and readiness assessments " +
	"and produce actionable, concrete guidance. Answer strictly in the requested JSON shape."

func writeRisk(b *prompt.Builder, risk model.Risk) {
	b.Section("Detected Risk").
		Field("Category", risk.Category).
		Field("Severity", risk.Severity).
		Field("Trigger", risk.Trigger).
		Field("Details", risk.Details)
}

func writeEssentials(b *prompt.Builder, heading string, essentials *model.Essentials) {
	if essentials == nil {
		return
	}
	b.Section(heading).
		Field("Organization", essentials.OrganizationName).
		Field("Platform", essentials.Platform)
	if essentials.Phase != "" {
		b.Field("Phase", essentials.Phase)
	}
	b.Field("Progress", essentials.ProgressPercent).
		Field("Risk score", essentials.RiskScore).
		List("Active risks", essentials.ActiveRisks).
		List("Delayed milestones", essentials.DelayedMilestones).
		List("Key risks", essentials.KeyRisks)
}

func buildMitigationPrompt(risk model.Risk, genCtx Context, maxTokens int) string {
	b := prompt.NewBuilder("Produce a mitigation plan for the following AI adoption risk. " +
		"Analyze the root cause, describe the potential impact, and list concrete ordered mitigation steps.")
	writeRisk(b, risk)
	writeEssentials(b, "Strategy Context", genCtx.Strategy)
	writeEssentials(b, "Assessment Context", genCtx.Assessment)
	return b.Render(maxTokens)
}

func buildComplianceDraftPrompt(risk model.Risk, genCtx Context, maxTokens int) string {
	b := prompt.NewBuilder("Draft a compliance document addressing the following compliance risk. " +
		"Name the applicable regulatory framework and structure the draft into sections.")
	writeRisk(b, risk)
	writeEssentials(b, "Strategy Context", genCtx.Strategy)
	writeEssentials(b, "Assessment Context", genCtx.Assessment)
	return b.Render(maxTokens)
}

func buildStrategyAdjustmentsPrompt(risk model.Risk, strategy *model.Essentials, maxTokens int) string {
	b := prompt.NewBuilder("Propose adjustments to the AI adoption strategy below that address the detected risk. " +
		"Keep each adjustment specific to one strategy area and justify it.")
	writeRisk(b, risk)
	writeEssentials(b, "Strategy", strategy)
	return b.Render(maxTokens)
}

func buildTrainingPrompt(risk model.Risk, genCtx Context, steps []model.MitigationStep, maxTokens int) string {
	b := prompt.NewBuilder("Recommend training modules that prepare this organization to handle the detected risk. " +
		"Align recommendations with the mitigation steps already planned.")
	writeRisk(b, risk)
	writeEssentials(b, "Strategy Context", genCtx.Strategy)
	writeEssentials(b, "Assessment Context", genCtx.Assessment)
	if len(steps) > 0 {
		planned := make([]string, 0, len(steps))
		for _, step := range steps {
			planned = append(planned, step.Step)
		}
		b.Section("Planned Mitigation Steps").List("Steps", planned)
	}
	return b.Render(maxTokens)
}
