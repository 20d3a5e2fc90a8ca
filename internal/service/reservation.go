package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/kafka"
)

// ReservationEvent is published on every lifecycle change.
type ReservationEvent struct {
	Type             string                  `json:"type"`
	ReservationID    int                     `json:"reservationId"`
	CarID            int                     `json:"carId"`
	UserID           int                     `json:"userId"`
	Status           model.ReservationStatus `json:"status"`
	DeletedConflicts int                     `json:"deletedConflicts,omitempty"`
}

// CreateReservation validates the request, prices the stay off the renter's
// current tier and creates a pending reservation. The total is fixed at this
// point; later price or tier changes never touch it.
func (s *Service) CreateReservation(ctx context.Context, actor model.Actor, req model.CreateReservationRequest) (model.Reservation, error) {
	if actor.Role != model.RoleRenter {
		return model.Reservation{}, errs.ErrRenterOnly
	}
	pickUp, returnDate := req.PickUpDate.Time, req.ReturnDate.Time
	if err := validateInterval(pickUp, returnDate, s.now()); err != nil {
		return model.Reservation{}, err
	}

	car, err := s.repo.GetCar(ctx, req.Car)
	if err != nil {
		return model.Reservation{}, err
	}
	if car.OwnerID == actor.ID {
		return model.Reservation{}, errs.ErrOwnCar
	}

	user, err := s.repo.GetUser(ctx, actor.ID)
	if err != nil {
		return model.Reservation{}, err
	}

	days := StayDays(pickUp, returnDate)
	rsv, err := s.repo.CreateReservation(ctx, model.Reservation{
		UserID:     actor.ID,
		CarID:      car.ID,
		PickUpDate: pickUp,
		ReturnDate: returnDate,
		TotalPrice: Quote(car.RentalPrice, user.MembershipTier, days),
	})
	if err != nil {
		return model.Reservation{}, err
	}

	s.publish(kafka.ReservationTopic, ReservationEvent{
		Type:          "reservation.created",
		ReservationID: rsv.ID,
		CarID:         rsv.CarID,
		UserID:        rsv.UserID,
		Status:        rsv.Status,
	})
	return rsv, nil
}

// UpdateReservationStatus drives the lifecycle. Accepting cascades over
// overlapping pending reservations on the same car; the result carries how
// many were removed.
func (s *Service) UpdateReservationStatus(ctx context.Context, actor model.Actor, id int, status model.ReservationStatus) (model.StatusChangeResult, error) {
	rsv, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return model.StatusChangeResult{}, err
	}
	car, err := s.repo.GetCar(ctx, rsv.CarID)
	if err != nil {
		return model.StatusChangeResult{}, err
	}

	if err := authorizeStatusChange(actor, rsv, car, status); err != nil {
		return model.StatusChangeResult{}, err
	}
	if !transitionAllowed(rsv.Status, status) {
		return model.StatusChangeResult{}, errs.ErrInvalidTransition
	}

	var result model.StatusChangeResult
	if status == model.StatusAccepted {
		accepted, deleted, err := s.repo.AcceptReservation(ctx, id)
		if err != nil {
			return model.StatusChangeResult{}, err
		}
		result = model.StatusChangeResult{Reservation: accepted, DeletedConflicts: deleted}
	} else {
		updated, err := s.repo.SetReservationStatus(ctx, id, status)
		if err != nil {
			return model.StatusChangeResult{}, err
		}
		result = model.StatusChangeResult{Reservation: updated}
	}

	s.publish(kafka.ReservationTopic, ReservationEvent{
		Type:             "reservation.status_changed",
		ReservationID:    result.Reservation.ID,
		CarID:            result.Reservation.CarID,
		UserID:           result.Reservation.UserID,
		Status:           result.Reservation.Status,
		DeletedConflicts: result.DeletedConflicts,
	})
	return result, nil
}

// DeleteReservation hard-removes a reservation within the caller's rights:
// renters only while pending, owners while non-terminal, admins always.
func (s *Service) DeleteReservation(ctx context.Context, actor model.Actor, id int) error {
	rsv, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return err
	}
	car, err := s.repo.GetCar(ctx, rsv.CarID)
	if err != nil {
		return err
	}
	if err := deleteGuard(actor, rsv, car); err != nil {
		return err
	}
	if err := s.repo.DeleteReservation(ctx, id); err != nil {
		return err
	}
	s.publish(kafka.ReservationTopic, ReservationEvent{
		Type:          "reservation.deleted",
		ReservationID: rsv.ID,
		CarID:         rsv.CarID,
		UserID:        rsv.UserID,
		Status:        rsv.Status,
	})
	return nil
}

// Availability reports whether the window is free of pending and accepted
// reservations. This is stricter than the creation check, which only blocks
// on accepted ones; pending requests merely flag the window here.
func (s *Service) Availability(ctx context.Context, carID int, from, till time.Time) (model.Availability, error) {
	if !till.After(from) {
		return model.Availability{}, errs.ErrReturnBeforePick
	}
	if _, err := s.repo.GetCar(ctx, carID); err != nil {
		return model.Availability{}, err
	}
	conflicts, err := s.repo.FindConflicts(ctx, carID, from, till,
		[]model.ReservationStatus{model.StatusPending, model.StatusAccepted})
	if err != nil {
		return model.Availability{}, err
	}
	return model.Availability{
		IsAvailable:             len(conflicts) == 0,
		ConflictingReservations: conflicts,
	}, nil
}

func (s *Service) GetReservation(ctx context.Context, actor model.Actor, id int) (model.Reservation, error) {
	rsv, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return model.Reservation{}, err
	}
	if actor.Admin() || rsv.UserID == actor.ID {
		return rsv, nil
	}
	car, err := s.repo.GetCar(ctx, rsv.CarID)
	if err != nil {
		return model.Reservation{}, err
	}
	if car.OwnerID != actor.ID {
		return model.Reservation{}, errs.ErrNotAuthorized
	}
	return rsv, nil
}

func (s *Service) MyReservations(ctx context.Context, actor model.Actor) ([]model.Reservation, error) {
	return s.repo.ListReservationsByRenter(ctx, actor.ID)
}

// ReceivedReservations lists reservations placed on the owner's cars.
func (s *Service) ReceivedReservations(ctx context.Context, actor model.Actor) ([]model.Reservation, error) {
	if actor.Role != model.RoleOwner && !actor.Admin() {
		return nil, errs.ErrOwnerOnly
	}
	return s.repo.ListReservationsReceived(ctx, actor.ID)
}

func (s *Service) AllReservations(ctx context.Context, actor model.Actor) ([]model.Reservation, error) {
	if !actor.Admin() {
		return nil, errs.ErrNotAuthorized
	}
	return s.repo.ListReservations(ctx)
}

// CompletePastDue flips accepted reservations whose return date has passed
// to completed. Invoked by the scheduler.
func (s *Service) CompletePastDue(ctx context.Context) (int64, error) {
	n, err := s.repo.CompletePastDue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("auto-completed reservations", zap.Int64("count", n))
	}
	return n, nil
}

// validateInterval rejects past pick-ups and non-positive stays. Same-day
// pick-up is allowed; the comparison is against the start of today.
func validateInterval(pickUp, returnDate, now time.Time) error {
	today := now.Truncate(24 * time.Hour)
	if pickUp.Before(today) {
		return errs.ErrPickUpInPast
	}
	if !returnDate.After(pickUp) {
		return errs.ErrReturnBeforePick
	}
	return nil
}

// transitionAllowed encodes the lifecycle: pending → accepted → completed,
// with cancel reachable from any non-terminal state.
func transitionAllowed(from, to model.ReservationStatus) bool {
	switch to {
	case model.StatusAccepted:
		return from == model.StatusPending
	case model.StatusCompleted:
		return from == model.StatusAccepted
	case model.StatusCancelled:
		return !from.Terminal()
	}
	return false
}

func authorizeStatusChange(actor model.Actor, rsv model.Reservation, car model.Car, status model.ReservationStatus) error {
	if actor.Admin() || car.OwnerID == actor.ID {
		return nil
	}
	// A renter may only cancel their own reservation, and only while it is
	// still pending.
	if rsv.UserID == actor.ID && status == model.StatusCancelled {
		if rsv.Status != model.StatusPending {
			return errs.ErrCancelPendingOnly
		}
		return nil
	}
	return errs.ErrNotAuthorized
}

func deleteGuard(actor model.Actor, rsv model.Reservation, car model.Car) error {
	switch {
	case actor.Admin():
		return nil
	case car.OwnerID == actor.ID:
		if rsv.Status.Terminal() {
			return errs.ErrInvalidTransition
		}
		return nil
	case rsv.UserID == actor.ID:
		if rsv.Status != model.StatusPending {
			return errs.ErrCancelPendingOnly
		}
		return nil
	}
	return errs.ErrNotAuthorized
}
