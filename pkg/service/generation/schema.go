package generation

import "github.com/m-mizutani/gollem"

// Response schemas are kept in lock-step with the typed results in
// pkg/domain/model/enrichment.go. A schema change without a matching type
// change (or vice versa) breaks parsing, so review both together.

func mitigationStepSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Type: gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"step": {
				Type:        gollem.TypeString,
				Description: "The concrete action to take",
				Required:    true,
			},
			"priority": {
				Type:        gollem.TypeString,
				Description: "Priority of the step (high, medium, low)",
				Required:    true,
			},
			"owner": {
				Type:        gollem.TypeString,
				Description: "Suggested role responsible for the step",
				Required:    true,
			},
			"timeline": {
				Type:        gollem.TypeString,
				Description: "Suggested timeframe, e.g. '2 weeks'",
				Required:    true,
			},
		},
	}
}

func mitigationPlanSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "MitigationPlanResponse",
		Description: "Mitigation plan for a detected adoption risk",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"risk_analysis": {
				Type:        gollem.TypeString,
				Description: "Analysis of the risk and its root causes",
				Required:    true,
			},
			"potential_impact": {
				Type:        gollem.TypeString,
				Description: "What happens to the organization if the risk materializes",
				Required:    true,
			},
			"mitigation_steps": {
				Type:        gollem.TypeArray,
				Description: "Ordered steps to mitigate the risk",
				Items:       mitigationStepSchema(),
				Required:    true,
			},
		},
	}
}

func complianceDraftSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "ComplianceDraftResponse",
		Description: "Draft of a compliance document addressing the risk",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"title": {
				Type:        gollem.TypeString,
				Description: "Title of the compliance document",
				Required:    true,
			},
			"framework": {
				Type:        gollem.TypeString,
				Description: "Regulatory framework the document addresses, e.g. 'EU AI Act'",
				Required:    true,
			},
			"sections": {
				Type:        gollem.TypeArray,
				Description: "Sections of the document",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"heading": {
							Type:        gollem.TypeString,
							Description: "Section heading",
							Required:    true,
						},
						"body": {
							Type:        gollem.TypeString,
							Description: "Section body text",
							Required:    true,
						},
					},
				},
				Required: true,
			},
		},
	}
}

func strategyAdjustmentsSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "StrategyAdjustmentsResponse",
		Description: "Proposed adjustments to the adoption strategy",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"adjustments": {
				Type:        gollem.TypeArray,
				Description: "List of proposed strategy adjustments",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"area": {
							Type:        gollem.TypeString,
							Description: "Strategy area to adjust, e.g. 'timeline', 'governance'",
							Required:    true,
						},
						"adjustment": {
							Type:        gollem.TypeString,
							Description: "The proposed change",
							Required:    true,
						},
						"rationale": {
							Type:        gollem.TypeString,
							Description: "Why the change addresses the risk",
							Required:    true,
						},
					},
				},
				Required: true,
			},
		},
	}
}

func trainingRecommendationsSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "TrainingRecommendationsResponse",
		Description: "Recommended training modules for the organization",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"modules": {
				Type:        gollem.TypeArray,
				Description: "Recommended training modules",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"title": {
							Type:        gollem.TypeString,
							Description: "Title of the training module",
							Required:    true,
						},
						"audience": {
							Type:        gollem.TypeString,
							Description: "Who should attend",
							Required:    true,
						},
						"objective": {
							Type:        gollem.TypeString,
							Description: "Learning objective of the module",
							Required:    true,
						},
						"duration_hours": {
							Type:        gollem.TypeInteger,
							Description: "Estimated duration in hours",
						},
					},
				},
				Required: true,
			},
		},
	}
}
