package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/adopt-lab/harbinger/pkg/domain/interfaces"
	"github.com/adopt-lab/harbinger/pkg/domain/model"
	"github.com/adopt-lab/harbinger/pkg/domain/types"
	"github.com/adopt-lab/harbinger/pkg/repository/memory"
	"github.com/adopt-lab/harbinger/pkg/usecase"
)

func newAlert() *model.RiskAlert {
	return &model.RiskAlert{
		ID:            types.NewAlertID(),
		SourceType:    types.SourceTypeStrategy,
		SourceID:      "s1",
		SourceName:    "Acme Corp",
		RiskCategory:  types.CategoryOperational,
		Severity:      types.SeverityHigh,
		RiskScore:     70,
		TriggerReason: types.TriggerProgressStall,
		Status:        types.AlertStatusNew,
	}
}

func TestPersistAlerts(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	alerts := []*model.RiskAlert{newAlert(), newAlert(), newAlert()}
	stored, err := uc.Alert.PersistAlerts(ctx, alerts)
	gt.NoError(t, err).Required()
	gt.Array(t, stored).Length(3)

	listed, err := uc.Alert.List(ctx, interfaces.AlertListOptions{})
	gt.NoError(t, err).Required()
	gt.Array(t, listed).Length(3)
}

func TestPersistAlerts_PartialFailure(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	good := newAlert()
	dup := newAlert()
	dup.ID = good.ID

	stored, err := uc.Alert.PersistAlerts(ctx, []*model.RiskAlert{good, dup, newAlert()})
	gt.Error(t, err)
	gt.Array(t, stored).Length(2)
}

func TestAlertGet(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	created := gtStore(t, uc, newAlert())

	got, err := uc.Alert.Get(ctx, created.ID)
	gt.NoError(t, err).Required()
	gt.Value(t, got.ID).Equal(created.ID)

	_, err = uc.Alert.Get(ctx, "missing")
	gt.Error(t, err).Is(usecase.ErrAlertNotFound)
}

func TestAlertList_Filters(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	a1 := newAlert()
	a2 := newAlert()
	a2.SourceType = types.SourceTypeAssessment
	a2.SourceID = "a9"
	gtStore(t, uc, a1)
	gtStore(t, uc, a2)

	byType, err := uc.Alert.List(ctx, interfaces.AlertListOptions{SourceType: types.SourceTypeAssessment})
	gt.NoError(t, err).Required()
	gt.Array(t, byType).Length(1)
	gt.Value(t, byType[0].SourceID).Equal("a9")

	bySource, err := uc.Alert.List(ctx, interfaces.AlertListOptions{SourceID: "s1"})
	gt.NoError(t, err).Required()
	gt.Array(t, bySource).Length(1)

	byStatus, err := uc.Alert.List(ctx, interfaces.AlertListOptions{Status: types.AlertStatusNew})
	gt.NoError(t, err).Required()
	gt.Array(t, byStatus).Length(2)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("walks the full lifecycle", func(t *testing.T) {
		uc := usecase.New(memory.New())
		alert := gtStore(t, uc, newAlert())

		for _, next := range []types.AlertStatus{
			types.AlertStatusAcknowledged,
			types.AlertStatusInProgress,
			types.AlertStatusResolved,
		} {
			updated, err := uc.Alert.UpdateStatus(ctx, alert.ID, next)
			gt.NoError(t, err).Required()
			gt.Value(t, updated.Status).Equal(next)
		}
	})

	t.Run("dismissal is allowed from any active state", func(t *testing.T) {
		uc := usecase.New(memory.New())
		alert := gtStore(t, uc, newAlert())

		updated, err := uc.Alert.UpdateStatus(ctx, alert.ID, types.AlertStatusDismissed)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.AlertStatusDismissed)
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		uc := usecase.New(memory.New())
		alert := gtStore(t, uc, newAlert())

		_, err := uc.Alert.UpdateStatus(ctx, alert.ID, types.AlertStatusResolved)
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)
	})

	t.Run("terminal states reject all transitions", func(t *testing.T) {
		uc := usecase.New(memory.New())
		alert := gtStore(t, uc, newAlert())

		_, err := uc.Alert.UpdateStatus(ctx, alert.ID, types.AlertStatusDismissed)
		gt.NoError(t, err).Required()

		_, err = uc.Alert.UpdateStatus(ctx, alert.ID, types.AlertStatusAcknowledged)
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)
	})

	t.Run("unknown alert is not found", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Alert.UpdateStatus(ctx, "missing", types.AlertStatusAcknowledged)
		gt.Error(t, err).Is(usecase.ErrAlertNotFound)
	})
}

func gtStore(t *testing.T, uc *usecase.UseCases, alert *model.RiskAlert) *model.RiskAlert {
	t.Helper()
	stored, err := uc.Alert.PersistAlerts(context.Background(), []*model.RiskAlert{alert})
	gt.NoError(t, err).Required()
	gt.Array(t, stored).Length(1).Required()
	return stored[0]
}
