package interfaces

import (
	"context"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

type StrategyRepository interface {
	// Create stores a new strategy
	Create(ctx context.Context, strategy *model.Strategy) (*model.Strategy, error)

	// Get retrieves a strategy by ID
	Get(ctx context.Context, id types.StrategyID) (*model.Strategy, error)

	// List retrieves all strategies
	List(ctx context.Context) ([]*model.Strategy, error)
}
