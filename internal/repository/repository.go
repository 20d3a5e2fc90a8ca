package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUser(ctx context.Context, id int, set map[string]interface{}) (model.User, error)
	ListUsers(ctx context.Context) ([]model.UserSummary, error)
}

type CarRepository interface {
	CreateCar(ctx context.Context, car model.Car) (model.Car, error)
	GetCar(ctx context.Context, id int) (model.Car, error)
	UpdateCar(ctx context.Context, id int, req model.CarRequest) (model.Car, error)
	DeleteCar(ctx context.Context, id int) error
	ListCars(ctx context.Context, filter model.CarFilter) ([]model.Car, int, error)
	ListCarsByOwner(ctx context.Context, ownerID int) ([]model.Car, error)
	TopRatedCars(ctx context.Context, ownerID, limit int) ([]model.Car, error)
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	ListReservations(ctx context.Context) ([]model.Reservation, error)
	ListReservationsByRenter(ctx context.Context, userID int) ([]model.Reservation, error)
	ListReservationsReceived(ctx context.Context, ownerID int) ([]model.Reservation, error)
	AcceptReservation(ctx context.Context, id int) (model.Reservation, int, error)
	SetReservationStatus(ctx context.Context, id int, status model.ReservationStatus) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id int) error
	FindConflicts(ctx context.Context, carID int, from, till time.Time, statuses []model.ReservationStatus) ([]model.Reservation, error)
	FindUnratedFinished(ctx context.Context, carID, userID int) (model.Reservation, error)
	CompletePastDue(ctx context.Context, now time.Time) (int64, error)
}

type RatingRepository interface {
	AddRating(ctx context.Context, reservationID int, rating model.Rating) (model.Rating, error)
	GetRating(ctx context.Context, id int) (model.Rating, error)
	UpdateRating(ctx context.Context, id int, score int, comment string) (model.Rating, error)
	DeleteRating(ctx context.Context, id int) error
	ListRatingsByCar(ctx context.Context, carID int) ([]model.Rating, error)
	ListRatingsByAuthor(ctx context.Context, userID int) ([]model.Rating, error)
	ListRatingsForOwner(ctx context.Context, ownerID int) ([]model.Rating, error)
}

type PromotionRepository interface {
	CreatePromotion(ctx context.Context, promo model.Promotion) (model.Promotion, error)
	UpdatePromotion(ctx context.Context, id int, promo model.Promotion) (model.Promotion, error)
	DeletePromotion(ctx context.Context, id int) error
	ListPromotions(ctx context.Context) ([]model.Promotion, error)
	ActivePromotions(ctx context.Context, now time.Time) ([]model.Promotion, error)
}

type Repository interface {
	UserRepository
	CarRepository
	ReservationRepository
	RatingRepository
	PromotionRepository
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	carsTableName         = `cars`
	reservationsTableName = `reservations`
	ratingsTableName      = `ratings`
	promotionsTableName   = `promotions`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// inTx runs fn inside a transaction, rolling back on error.
func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
