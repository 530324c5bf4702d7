package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type alertRepository struct {
	mu     sync.RWMutex
	alerts map[types.AlertID]*model.RiskAlert
}

func newAlertRepository() *alertRepository {
	return &alertRepository{
		alerts: make(map[types.AlertID]*model.RiskAlert),
	}
}

func (r *alertRepository) Create(ctx context.Context, alert *model.RiskAlert) (*model.RiskAlert, error) {
	if alert.ID == "" {
		return nil, goerr.New("alert ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alerts[alert.ID]; exists {
		return nil, goerr.New("alert already exists", goerr.V("id", alert.ID))
	}

	now := time.Now().UTC()
	created := copyAlert(alert)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	created.UpdatedAt = now
	created.Status = created.Status.Normalize()

	r.alerts[created.ID] = created
	return copyAlert(created), nil
}

func (r *alertRepository) Get(ctx context.Context, id types.AlertID) (*model.RiskAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alert, exists := r.alerts[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "alert not found", goerr.V("id", id))
	}

	return copyAlert(alert), nil
}

func (r *alertRepository) List(ctx context.Context, opts interfaces.AlertListOptions) ([]*model.RiskAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alerts := make([]*model.RiskAlert, 0, len(r.alerts))
	for _, alert := range r.alerts {
		if opts.SourceType != "" && alert.SourceType != opts.SourceType {
			continue
		}
		if opts.SourceID != "" && alert.SourceID != opts.SourceID {
			continue
		}
		if opts.Status != "" && alert.Status != opts.Status {
			continue
		}
		alerts = append(alerts, copyAlert(alert))
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})

	return alerts, nil
}

func (r *alertRepository) Update(ctx context.Context, alert *model.RiskAlert) (*model.RiskAlert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.alerts[alert.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "alert not found", goerr.V("id", alert.ID))
	}

	updated := copyAlert(alert)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.alerts[updated.ID] = updated
	return copyAlert(updated), nil
}

// copyAlert returns a deep copy to prevent external modification
func copyAlert(alert *model.RiskAlert) *model.RiskAlert {
	copied := *alert

	if alert.MitigationSteps != nil {
		copied.MitigationSteps = make([]model.MitigationStep, len(alert.MitigationSteps))
		copy(copied.MitigationSteps, alert.MitigationSteps)
	}
	if alert.StrategyAdjustments != nil {
		copied.StrategyAdjustments = make([]model.StrategyAdjustment, len(alert.StrategyAdjustments))
		copy(copied.StrategyAdjustments, alert.StrategyAdjustments)
	}
	if alert.RecommendedTraining != nil {
		copied.RecommendedTraining = make([]model.TrainingModule, len(alert.RecommendedTraining))
		copy(copied.RecommendedTraining, alert.RecommendedTraining)
	}
	if alert.ComplianceDraft != nil {
		draft := *alert.ComplianceDraft
		if alert.ComplianceDraft.Sections != nil {
			draft.Sections = make([]model.DraftSection, len(alert.ComplianceDraft.Sections))
			copy(draft.Sections, alert.ComplianceDraft.Sections)
		}
		copied.ComplianceDraft = &draft
	}

	return &copied
}
