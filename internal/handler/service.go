package handler

import (
	"context"
	"time"

	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ AuthService        = (*service.Service)(nil)
	_ CarService         = (*service.Service)(nil)
	_ ReservationService = (*service.Service)(nil)
	_ RatingService      = (*service.Service)(nil)
	_ MembershipService  = (*service.Service)(nil)
	_ PromotionService   = (*service.Service)(nil)
)

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (model.User, model.AuthResponse, error)
	Me(ctx context.Context, actor model.Actor) (model.User, error)
	UpdateProfile(ctx context.Context, actor model.Actor, req model.UpdateProfileRequest) (model.User, error)
	ListUsers(ctx context.Context, actor model.Actor) ([]model.UserSummary, error)
	AdminUpdateUser(ctx context.Context, actor model.Actor, id int, req model.AdminUpdateUserRequest) (model.User, error)
}

type CarService interface {
	CreateCar(ctx context.Context, actor model.Actor, req model.CarRequest) (model.Car, error)
	GetCar(ctx context.Context, id int) (model.Car, error)
	UpdateCar(ctx context.Context, actor model.Actor, id int, req model.CarRequest) (model.Car, error)
	DeleteCar(ctx context.Context, actor model.Actor, id int) error
	ListCars(ctx context.Context, actor *model.Actor, filter model.CarFilter) (model.CarList, error)
	MyCars(ctx context.Context, actor model.Actor) ([]model.Car, error)
	TopRatedCars(ctx context.Context, actor model.Actor, limit int) ([]model.Car, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, actor model.Actor, req model.CreateReservationRequest) (model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, actor model.Actor, id int, status model.ReservationStatus) (model.StatusChangeResult, error)
	DeleteReservation(ctx context.Context, actor model.Actor, id int) error
	Availability(ctx context.Context, carID int, from, till time.Time) (model.Availability, error)
	GetReservation(ctx context.Context, actor model.Actor, id int) (model.Reservation, error)
	MyReservations(ctx context.Context, actor model.Actor) ([]model.Reservation, error)
	ReceivedReservations(ctx context.Context, actor model.Actor) ([]model.Reservation, error)
	AllReservations(ctx context.Context, actor model.Actor) ([]model.Reservation, error)
}

type RatingService interface {
	AddRating(ctx context.Context, actor model.Actor, carID int, req model.RatingRequest) (model.Rating, error)
	UpdateRating(ctx context.Context, actor model.Actor, id int, req model.RatingRequest) (model.Rating, error)
	DeleteRating(ctx context.Context, actor model.Actor, id int) error
	CarRatings(ctx context.Context, carID int) ([]model.Rating, error)
	MyRatings(ctx context.Context, actor model.Actor) ([]model.Rating, error)
	ReceivedRatings(ctx context.Context, actor model.Actor) ([]model.Rating, error)
}

type MembershipService interface {
	MembershipTiers() []model.TierInfo
	MembershipStatus(ctx context.Context, actor model.Actor) (model.Membership, error)
	UpgradeMembership(ctx context.Context, actor model.Actor, tier model.MembershipTier) (model.Membership, error)
	RenewMembership(ctx context.Context, actor model.Actor) (model.Membership, error)
	CancelMembership(ctx context.Context, actor model.Actor) (model.Membership, error)
}

type PromotionService interface {
	CreatePromotion(ctx context.Context, actor model.Actor, req model.PromotionRequest) (model.Promotion, error)
	UpdatePromotion(ctx context.Context, actor model.Actor, id int, req model.PromotionRequest) (model.Promotion, error)
	DeletePromotion(ctx context.Context, actor model.Actor, id int) error
	Promotions(ctx context.Context) ([]model.Promotion, error)
	AllPromotions(ctx context.Context, actor model.Actor) ([]model.Promotion, error)
}
