package interfaces

import (
	"context"

	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
)

// AlertListOptions filters List results. Zero values mean no filtering.
type AlertListOptions struct {
	SourceType types.SourceType
	SourceID   string
	Status     types.AlertStatus
}

type AlertRepository interface {
	// Create stores a new alert. The alert must carry an ID.
	Create(ctx context.Context, alert *model.RiskAlert) (*model.RiskAlert, error)

	// Get retrieves an alert by ID
	Get(ctx context.Context, id types.AlertID) (*model.RiskAlert, error)

	// List retrieves alerts matching the options, newest first
	List(ctx context.Context, opts AlertListOptions) ([]*model.RiskAlert, error)

	// Update replaces an existing alert
	Update(ctx context.Context, alert *model.RiskAlert) (*model.RiskAlert, error)
}
