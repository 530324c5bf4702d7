package usecase

import (
	"context"
	"errors"

	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

// AlertUseCase owns the persisted alert lifecycle: creation after a scan
// and the status state machine driven by user action.
type AlertUseCase struct {
	repo interfaces.Repository
}

func NewAlertUseCase(repo interfaces.Repository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// PersistAlerts stores every alert produced by a scan. A failure to store
// one alert does not abort the rest; the error for each failed alert is
// logged and the successfully stored alerts are returned.
func (uc *AlertUseCase) PersistAlerts(ctx context.Context, alerts []*model.RiskAlert) ([]*model.RiskAlert, error) {
	stored := make([]*model.RiskAlert, 0, len(alerts))
	var errs []error

	for _, alert := range alerts {
		created, err := uc.repo.Alert().Create(ctx, alert)
		if err != nil {
			errs = append(errs, errutil.Handle(ctx, goerr.Wrap(err, "failed to persist alert",
				goerr.V("alert_id", alert.ID)), "alert persistence failed"))
			continue
		}
		stored = append(stored, created)
	}

	return stored, errors.Join(errs...)
}

// Get retrieves one alert by ID
func (uc *AlertUseCase) Get(ctx context.Context, id types.AlertID) (*model.RiskAlert, error) {
	alert, err := uc.repo.Alert().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAlertNotFound, "failed to get alert", goerr.V("id", id))
	}
	return alert, nil
}

// List retrieves alerts matching the options, newest first
func (uc *AlertUseCase) List(ctx context.Context, opts interfaces.AlertListOptions) ([]*model.RiskAlert, error) {
	alerts, err := uc.repo.Alert().List(ctx, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list alerts")
	}
	return alerts, nil
}

// UpdateStatus advances an alert through its lifecycle. Transitions out of
// resolved or dismissed are rejected, as is any transition the state
// machine does not allow.
func (uc *AlertUseCase) UpdateStatus(ctx context.Context, id types.AlertID, next types.AlertStatus) (*model.RiskAlert, error) {
	alert, err := uc.repo.Alert().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrAlertNotFound, "failed to get alert", goerr.V("id", id))
	}

	current := alert.Status.Normalize()
	if !current.CanTransitionTo(next) {
		return nil, goerr.Wrap(ErrInvalidTransition, "status transition rejected",
			goerr.V("id", id),
			goerr.V("from", current),
			goerr.V("to", next))
	}

	alert.Status = next
	updated, err := uc.repo.Alert().Update(ctx, alert)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update alert", goerr.V("id", id))
	}

	return updated, nil
}
