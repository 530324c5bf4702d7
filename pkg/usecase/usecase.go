package usecase

import (
	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/model/config"
	"github.com/adopt-lab/harbinger/pkg/service/cache"
	"github.com/adopt-lab/harbinger/pkg/service/generation"
	"github.com/adopt-lab/harbinger/pkg/service/rules"
)

type UseCases struct {
	repo interfaces.Repository

	ruleConfig  *config.RuleConfig
	gen         generation.Service
	resultCache cache.Cache
	maxInFlight int

	Scan   *ScanUseCase
	Enrich *EnrichUseCase
	Alert  *AlertUseCase
}

type Option func(*UseCases)

// WithRuleConfig overrides the default detection thresholds
func WithRuleConfig(cfg *config.RuleConfig) Option {
	return func(uc *UseCases) {
		uc.ruleConfig = cfg
	}
}

// WithGeneration sets the generation service used for enrichment
func WithGeneration(gen generation.Service) Option {
	return func(uc *UseCases) {
		uc.gen = gen
	}
}

// WithCache sets the result cache backend. Defaults to an in-process one.
func WithCache(c cache.Cache) Option {
	return func(uc *UseCases) {
		uc.resultCache = c
	}
}

// WithMaxInFlight bounds concurrent enrichment calls during a scan
func WithMaxInFlight(n int) Option {
	return func(uc *UseCases) {
		uc.maxInFlight = n
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	evaluator := rules.New(uc.ruleConfig)
	uc.Enrich = NewEnrichUseCase(uc.gen, uc.resultCache)
	uc.Scan = NewScanUseCase(evaluator, uc.Enrich, uc.maxInFlight)
	uc.Alert = NewAlertUseCase(repo)

	return uc
}
