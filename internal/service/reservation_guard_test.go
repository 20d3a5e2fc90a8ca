package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

func TestValidateInterval(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pickUp  time.Time
		ret     time.Time
		wantErr error
	}{
		{"future window", today.AddDate(0, 0, 1), today.AddDate(0, 0, 3), nil},
		{"same-day pick-up allowed", today, today.AddDate(0, 0, 1), nil},
		{"pick-up in the past", today.AddDate(0, 0, -1), today.AddDate(0, 0, 2), errs.ErrPickUpInPast},
		{"return equals pick-up", today.AddDate(0, 0, 1), today.AddDate(0, 0, 1), errs.ErrReturnBeforePick},
		{"return before pick-up", today.AddDate(0, 0, 3), today.AddDate(0, 0, 1), errs.ErrReturnBeforePick},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInterval(tt.pickUp, tt.ret, now)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransitionAllowed(t *testing.T) {
	allowed := []struct{ from, to model.ReservationStatus }{
		{model.StatusPending, model.StatusAccepted},
		{model.StatusAccepted, model.StatusCompleted},
		{model.StatusPending, model.StatusCancelled},
		{model.StatusAccepted, model.StatusCancelled},
	}
	for _, tr := range allowed {
		require.True(t, transitionAllowed(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to model.ReservationStatus }{
		{model.StatusAccepted, model.StatusPending},
		{model.StatusPending, model.StatusCompleted},
		{model.StatusCompleted, model.StatusCancelled},
		{model.StatusCancelled, model.StatusAccepted},
		{model.StatusCompleted, model.StatusAccepted},
	}
	for _, tr := range denied {
		require.False(t, transitionAllowed(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestAuthorizeStatusChange(t *testing.T) {
	car := model.Car{ID: 3, OwnerID: 1}
	rsv := model.Reservation{ID: 5, UserID: 2, CarID: 3, Status: model.StatusPending}

	owner := model.Actor{ID: 1, Role: model.RoleOwner}
	renter := model.Actor{ID: 2, Role: model.RoleRenter}
	stranger := model.Actor{ID: 9, Role: model.RoleRenter}
	admin := model.Actor{ID: 8, Role: model.RoleAdmin}

	require.NoError(t, authorizeStatusChange(owner, rsv, car, model.StatusAccepted))
	require.NoError(t, authorizeStatusChange(admin, rsv, car, model.StatusAccepted))
	require.ErrorIs(t, authorizeStatusChange(renter, rsv, car, model.StatusAccepted), errs.ErrNotAuthorized)
	require.ErrorIs(t, authorizeStatusChange(stranger, rsv, car, model.StatusCancelled), errs.ErrNotAuthorized)

	// renter cancel path
	require.NoError(t, authorizeStatusChange(renter, rsv, car, model.StatusCancelled))
	acceptedRsv := rsv
	acceptedRsv.Status = model.StatusAccepted
	require.ErrorIs(t, authorizeStatusChange(renter, acceptedRsv, car, model.StatusCancelled), errs.ErrCancelPendingOnly)
}

func TestDeleteGuard(t *testing.T) {
	car := model.Car{ID: 3, OwnerID: 1}
	owner := model.Actor{ID: 1, Role: model.RoleOwner}
	renter := model.Actor{ID: 2, Role: model.RoleRenter}
	stranger := model.Actor{ID: 9, Role: model.RoleRenter}
	admin := model.Actor{ID: 8, Role: model.RoleAdmin}

	pending := model.Reservation{ID: 5, UserID: 2, CarID: 3, Status: model.StatusPending}
	accepted := model.Reservation{ID: 6, UserID: 2, CarID: 3, Status: model.StatusAccepted}
	completed := model.Reservation{ID: 7, UserID: 2, CarID: 3, Status: model.StatusCompleted}

	require.NoError(t, deleteGuard(renter, pending, car))
	require.ErrorIs(t, deleteGuard(renter, accepted, car), errs.ErrCancelPendingOnly)

	require.NoError(t, deleteGuard(owner, pending, car))
	require.NoError(t, deleteGuard(owner, accepted, car))
	require.ErrorIs(t, deleteGuard(owner, completed, car), errs.ErrInvalidTransition)

	require.NoError(t, deleteGuard(admin, completed, car))
	require.ErrorIs(t, deleteGuard(stranger, pending, car), errs.ErrNotAuthorized)
}
