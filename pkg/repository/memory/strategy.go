package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type strategyRepository struct {
	mu         sync.RWMutex
	strategies map[types.StrategyID]*model.Strategy
}

func newStrategyRepository() *strategyRepository {
	return &strategyRepository{
		strategies: make(map[types.StrategyID]*model.Strategy),
	}
}

func (r *strategyRepository) Create(ctx context.Context, strategy *model.Strategy) (*model.Strategy, error) {
	if strategy.ID == "" {
		return nil, goerr.New("strategy ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[strategy.ID]; exists {
		return nil, goerr.New("strategy already exists", goerr.V("id", strategy.ID))
	}

	now := time.Now().UTC()
	created := copyStrategy(strategy)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	created.UpdatedAt = now

	r.strategies[created.ID] = created
	return copyStrategy(created), nil
}

func (r *strategyRepository) Get(ctx context.Context, id types.StrategyID) (*model.Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.strategies[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "strategy not found", goerr.V("id", id))
	}

	return copyStrategy(strategy), nil
}

func (r *strategyRepository) List(ctx context.Context) ([]*model.Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategies := make([]*model.Strategy, 0, len(r.strategies))
	for _, strategy := range r.strategies {
		strategies = append(strategies, copyStrategy(strategy))
	}

	sort.Slice(strategies, func(i, j int) bool {
		return strategies[i].CreatedAt.Before(strategies[j].CreatedAt)
	})

	return strategies, nil
}

// copyStrategy returns a deep copy to prevent external modification
func copyStrategy(strategy *model.Strategy) *model.Strategy {
	copied := *strategy

	if strategy.ProgressTracking != nil {
		tracking := *strategy.ProgressTracking
		copied.ProgressTracking = &tracking
	}
	if strategy.RiskAnalysis != nil {
		analysis := *strategy.RiskAnalysis
		if strategy.RiskAnalysis.IdentifiedRisks != nil {
			analysis.IdentifiedRisks = make([]model.IdentifiedRisk, len(strategy.RiskAnalysis.IdentifiedRisks))
			copy(analysis.IdentifiedRisks, strategy.RiskAnalysis.IdentifiedRisks)
		}
		copied.RiskAnalysis = &analysis
	}
	if strategy.Milestones != nil {
		copied.Milestones = make([]model.Milestone, len(strategy.Milestones))
		copy(copied.Milestones, strategy.Milestones)
	}

	return &copied
}
