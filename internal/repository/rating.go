package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

var ratingColumns = []string{"id", "user_id", "car_id", "score", "comment", "created_at"}

// AddRating inserts the rating, links it to the reservation and recomputes
// the car aggregates in one transaction.
func (r *repository) AddRating(ctx context.Context, reservationID int, rating model.Rating) (model.Rating, error) {
	var created model.Rating
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(ratingsTableName).
			Columns("user_id", "car_id", "score", "comment").
			Values(rating.UserID, rating.CarID, rating.Score, rating.Comment).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, q, args...); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`update reservations set rating_id = $1 where id = $2 and rating_id is null`,
			created.ID, reservationID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotEligible
		}
		return recomputeCarRating(ctx, tx, created.CarID)
	})
	if err != nil {
		return model.Rating{}, err
	}
	return created, nil
}

func (r *repository) GetRating(ctx context.Context, id int) (model.Rating, error) {
	q, args, err := qb.Select(ratingColumns...).
		From(ratingsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Rating{}, err
	}
	var rating model.Rating
	if err := r.db.GetContext(ctx, &rating, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rating{}, errs.ErrRatingNotFound
		}
		return model.Rating{}, err
	}
	return rating, nil
}

func (r *repository) UpdateRating(ctx context.Context, id int, score int, comment string) (model.Rating, error) {
	var updated model.Rating
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Update(ratingsTableName).
			Set("score", score).
			Set("comment", comment).
			Where(sq.Eq{"id": id}).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &updated, q, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrRatingNotFound
			}
			return err
		}
		return recomputeCarRating(ctx, tx, updated.CarID)
	})
	if err != nil {
		return model.Rating{}, err
	}
	return updated, nil
}

// DeleteRating removes the rating and refreshes the car aggregates. The
// reservation's rating_id is cleared by the FK's on delete set null, which
// frees the renter to rate that reservation again.
func (r *repository) DeleteRating(ctx context.Context, id int) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		var carID int
		q := `delete from ratings where id = $1 returning car_id`
		if err := tx.QueryRowContext(ctx, q, id).Scan(&carID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrRatingNotFound
			}
			return err
		}
		return recomputeCarRating(ctx, tx, carID)
	})
}

func (r *repository) ListRatingsByCar(ctx context.Context, carID int) ([]model.Rating, error) {
	return r.selectRatings(ctx, qb.Select(ratingColumns...).
		From(ratingsTableName).
		Where(sq.Eq{"car_id": carID}).
		OrderBy("created_at desc"))
}

func (r *repository) ListRatingsByAuthor(ctx context.Context, userID int) ([]model.Rating, error) {
	return r.selectRatings(ctx, qb.Select(ratingColumns...).
		From(ratingsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc"))
}

// ListRatingsForOwner returns ratings left on any of the owner's cars.
func (r *repository) ListRatingsForOwner(ctx context.Context, ownerID int) ([]model.Rating, error) {
	return r.selectRatings(ctx, qb.Select(
		"rt.id", "rt.user_id", "rt.car_id", "rt.score", "rt.comment", "rt.created_at").
		From(ratingsTableName+" rt").
		Join(carsTableName+" c on c.id = rt.car_id").
		Where(sq.Eq{"c.owner_id": ownerID}).
		OrderBy("rt.created_at desc"))
}

func (r *repository) selectRatings(ctx context.Context, b sq.SelectBuilder) ([]model.Rating, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Rating, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// recomputeCarRating rewrites the denormalized aggregates from the ratings
// table so they never drift from the source rows.
func recomputeCarRating(ctx context.Context, tx *sqlx.Tx, carID int) error {
	q := `update cars set
		rating_score = coalesce((select avg(score) from ratings where car_id = $1), 0),
		review_count = (select count(*) from ratings where car_id = $1)
		where id = $1`
	_, err := tx.ExecContext(ctx, q, carID)
	return err
}
