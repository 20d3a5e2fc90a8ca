package errs

import (
	"errors"
	"net/http"
)

// Domain-rule violations are detected before any mutation and surfaced as
// one of these sentinels; the handler maps them to HTTP statuses.
var (
	ErrCarNotFound         = errors.New("car not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRatingNotFound      = errors.New("rating not found")
	ErrPromotionNotFound   = errors.New("promotion not found")

	ErrNotAuthorized  = errors.New("not authorized")
	ErrRenterOnly     = errors.New("only car renters can make reservations")
	ErrNotEligible    = errors.New("no eligible reservations found for rating")
	ErrOwnerOnly      = errors.New("only car owners can list cars")
	ErrRenterTierOnly = errors.New("only car renters can have a membership tier")
	ErrInvalidToken   = errors.New("invalid token")

	ErrInvalidRole       = errors.New("invalid role")
	ErrPickUpInPast      = errors.New("pick-up date cannot be in the past")
	ErrReturnBeforePick  = errors.New("return date must be after pick-up date")
	ErrOwnCar            = errors.New("you cannot rent your own car")
	ErrInvalidTier       = errors.New("invalid membership tier")
	ErrNothingToRenew    = errors.New("only silver or gold members can renew membership")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCancelPendingOnly = errors.New("can only cancel pending reservations")
	ErrInvalidCreds      = errors.New("invalid credentials")

	ErrInvalidPromoWindow = errors.New("validTo must be after validFrom")

	ErrDatesConflict   = errors.New("car is already reserved for these dates")
	ErrDuplicatePlates = errors.New("number plates already registered")
	ErrEmailTaken      = errors.New("user already exists")
)

var (
	notFound = []error{
		ErrCarNotFound, ErrUserNotFound, ErrReservationNotFound,
		ErrRatingNotFound, ErrPromotionNotFound,
	}
	forbidden = []error{
		ErrNotAuthorized, ErrRenterOnly, ErrNotEligible, ErrOwnerOnly,
	}
	badRequest = []error{
		ErrInvalidRole, ErrPickUpInPast, ErrReturnBeforePick, ErrOwnCar, ErrInvalidTier,
		ErrNothingToRenew, ErrInvalidTransition, ErrCancelPendingOnly,
		ErrDatesConflict, ErrDuplicatePlates, ErrEmailTaken, ErrRenterTierOnly,
		ErrInvalidPromoWindow,
	}
	unauthorized = []error{
		ErrInvalidCreds, ErrInvalidToken,
	}
)

// HTTPStatus maps a domain error to its response status. Unrecognized
// errors are treated as store/backend failures.
func HTTPStatus(err error) int {
	switch {
	case in(err, notFound):
		return http.StatusNotFound
	case in(err, forbidden):
		return http.StatusForbidden
	case in(err, badRequest):
		return http.StatusBadRequest
	case in(err, unauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func in(err error, set []error) bool {
	for _, target := range set {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
