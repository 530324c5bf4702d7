package generation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// Defaults for per-call bounds. Each generation call gets its own timeout
// and its own prompt token budget.
const (
	DefaultCallTimeout     = 30 * time.Second
	DefaultMaxPromptTokens = 4000
)

// client implements Service on top of a gollem LLM client
type client struct {
	llmClient       gollem.LLMClient
	callTimeout     time.Duration
	maxPromptTokens int
}

var _ Service = &client{}

// Option is a functional option for client configuration
type Option func(*client)

// WithCallTimeout bounds each individual generation call
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithMaxPromptTokens caps the rendered prompt size per call
func WithMaxPromptTokens(maxTokens int) Option {
	return func(c *client) {
		if maxTokens > 0 {
			c.maxPromptTokens = maxTokens
		}
	}
}

// New creates a generation service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient:       llmClient,
		callTimeout:     DefaultCallTimeout,
		maxPromptTokens: DefaultMaxPromptTokens,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// generate runs one structured-output call and parses the response into out
func (c *client) generate(ctx context.Context, callType string, userPrompt string, schema *gollem.Parameter, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(schema),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create LLM session", goerr.V("call", callType))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(userPrompt))
	if err != nil {
		return goerr.Wrap(err, "failed to generate content", goerr.V("call", callType))
	}
	if len(resp.Texts) == 0 {
		return goerr.New("empty LLM response", goerr.V("call", callType))
	}

	if err := json.Unmarshal([]byte(resp.Texts[0]), out); err != nil {
		return goerr.Wrap(err, "failed to parse LLM response",
			goerr.V("call", callType),
			goerr.V("response", resp.Texts[0]))
	}

	return nil
}

func (c *client) GenerateMitigationPlan(ctx context.Context, risk model.Risk, genCtx Context) (*model.MitigationPlan, error) {
	userPrompt := buildMitigationPrompt(risk, genCtx, c.maxPromptTokens)

	var plan model.MitigationPlan
	if err := c.generate(ctx, "mitigation_plan", userPrompt, mitigationPlanSchema(), &plan); err != nil {
		return nil, err
	}

	for i := range plan.MitigationSteps {
		plan.MitigationSteps[i].Status = model.StepStatusPending
	}

	return &plan, nil
}

func (c *client) GenerateComplianceDraft(ctx context.Context, risk model.Risk, genCtx Context) (*model.ComplianceDraft, error) {
	userPrompt := buildComplianceDraftPrompt(risk, genCtx, c.maxPromptTokens)

	var draft model.ComplianceDraft
	if err := c.generate(ctx, "compliance_draft", userPrompt, complianceDraftSchema(), &draft); err != nil {
		return nil, err
	}

	return &draft, nil
}

func (c *client) GenerateStrategyAdjustments(ctx context.Context, risk model.Risk, strategy *model.Essentials) ([]model.StrategyAdjustment, error) {
	userPrompt := buildStrategyAdjustmentsPrompt(risk, strategy, c.maxPromptTokens)

	var resp struct {
		Adjustments []model.StrategyAdjustment `json:"adjustments"`
	}
	if err := c.generate(ctx, "strategy_adjustments", userPrompt, strategyAdjustmentsSchema(), &resp); err != nil {
		return nil, err
	}

	return resp.Adjustments, nil
}

func (c *client) GenerateTrainingRecommendations(ctx context.Context, risk model.Risk, genCtx Context, steps []model.MitigationStep) ([]model.TrainingModule, error) {
	userPrompt := buildTrainingPrompt(risk, genCtx, steps, c.maxPromptTokens)

	var resp struct {
		Modules []model.TrainingModule `json:"modules"`
	}
	if err := c.generate(ctx, "training_recommendations", userPrompt, trainingRecommendationsSchema(), &resp); err != nil {
		return nil, err
	}

	return resp.Modules, nil
}
