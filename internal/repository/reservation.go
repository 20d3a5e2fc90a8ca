package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

var reservationColumns = []string{
	"id", "user_id", "car_id", "pick_up_date", "return_date",
	"total_price", "status", "rating_id", "created_at",
}

// Two intervals conflict when pick_up <= other.return AND return >=
// other.pick_up; boundaries touching at a single instant count as a
// conflict.
const overlapCond = `pick_up_date <= $2 and return_date >= $3`

// CreateReservation inserts a pending reservation after re-checking the
// accepted-overlap rule under a lock on the car row, so two interleaved
// creations cannot both pass the check.
func (r *repository) CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	var created model.Reservation
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockCar(ctx, tx, rsv.CarID); err != nil {
			return err
		}

		var conflict bool
		q := `select exists(
			select 1 from reservations
			where car_id = $1 and status = 'accepted'
			and ` + overlapCond + `)`
		if err := tx.QueryRowContext(ctx, q, rsv.CarID, rsv.ReturnDate, rsv.PickUpDate).Scan(&conflict); err != nil {
			return err
		}
		if conflict {
			return errs.ErrDatesConflict
		}

		q, args, err := qb.Insert(reservationsTableName).
			Columns("user_id", "car_id", "pick_up_date", "return_date", "total_price", "status").
			Values(rsv.UserID, rsv.CarID, rsv.PickUpDate, rsv.ReturnDate, rsv.TotalPrice, model.StatusPending).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, q, args...); err != nil {
			r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args))
			return err
		}
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return created, nil
}

// AcceptReservation flips a pending reservation to accepted and hard-deletes
// every other pending reservation on the same car overlapping its interval,
// all in one transaction. The deleted count is returned to the caller.
func (r *repository) AcceptReservation(ctx context.Context, id int) (model.Reservation, int, error) {
	var (
		accepted model.Reservation
		deleted  int64
	)
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var rsv model.Reservation
		q := `select * from reservations where id = $1 for update`
		if err := tx.GetContext(ctx, &rsv, q, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrReservationNotFound
			}
			return err
		}
		if rsv.Status != model.StatusPending {
			return errs.ErrInvalidTransition
		}
		if err := lockCar(ctx, tx, rsv.CarID); err != nil {
			return err
		}

		var conflict bool
		q = `select exists(
			select 1 from reservations
			where car_id = $1 and status = 'accepted' and id <> $4
			and ` + overlapCond + `)`
		if err := tx.QueryRowContext(ctx, q, rsv.CarID, rsv.ReturnDate, rsv.PickUpDate, rsv.ID).Scan(&conflict); err != nil {
			return err
		}
		if conflict {
			return errs.ErrDatesConflict
		}

		q = `delete from reservations
			where car_id = $1 and status = 'pending' and id <> $4
			and ` + overlapCond
		res, err := tx.ExecContext(ctx, q, rsv.CarID, rsv.ReturnDate, rsv.PickUpDate, rsv.ID)
		if err != nil {
			return err
		}
		deleted, _ = res.RowsAffected()

		q = `update reservations set status = 'accepted' where id = $1 returning *`
		return tx.GetContext(ctx, &accepted, q, rsv.ID)
	})
	if err != nil {
		return model.Reservation{}, 0, err
	}
	return accepted, int(deleted), nil
}

func (r *repository) SetReservationStatus(ctx context.Context, id int, status model.ReservationStatus) (model.Reservation, error) {
	q, args, err := qb.Update(reservationsTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (r *repository) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (r *repository) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return r.selectReservations(ctx, qb.Select(reservationColumns...).
		From(reservationsTableName).
		OrderBy("created_at desc"))
}

func (r *repository) ListReservationsByRenter(ctx context.Context, userID int) ([]model.Reservation, error) {
	return r.selectReservations(ctx, qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc"))
}

// ListReservationsReceived returns reservations on every car the owner has
// listed.
func (r *repository) ListReservationsReceived(ctx context.Context, ownerID int) ([]model.Reservation, error) {
	return r.selectReservations(ctx, qb.Select(
		"r.id", "r.user_id", "r.car_id", "r.pick_up_date", "r.return_date",
		"r.total_price", "r.status", "r.rating_id", "r.created_at").
		From(reservationsTableName+" r").
		Join(carsTableName+" c on c.id = r.car_id").
		Where(sq.Eq{"c.owner_id": ownerID}).
		OrderBy("r.created_at desc"))
}

func (r *repository) selectReservations(ctx context.Context, b sq.SelectBuilder) ([]model.Reservation, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) DeleteReservation(ctx context.Context, id int) error {
	q, args, err := qb.Delete(reservationsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrReservationNotFound
	}
	return nil
}

func (r *repository) FindConflicts(ctx context.Context, carID int, from, till time.Time, statuses []model.ReservationStatus) ([]model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"car_id": carID}).
		Where(sq.Eq{"status": statuses}).
		Where(sq.LtOrEq{"pick_up_date": till}).
		Where(sq.GtOrEq{"return_date": from}).
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Reservation, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// FindUnratedFinished returns an accepted or completed reservation by the
// renter on the car that does not yet carry a rating reference. Completed
// counts because the past-due sweep flips accepted rentals to completed
// before most renters get around to rating them.
func (r *repository) FindUnratedFinished(ctx context.Context, carID, userID int) (model.Reservation, error) {
	q, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{
			"car_id":  carID,
			"user_id": userID,
			"status":  []model.ReservationStatus{model.StatusAccepted, model.StatusCompleted},
		}).
		Where("rating_id is null").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotEligible
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (r *repository) CompletePastDue(ctx context.Context, now time.Time) (int64, error) {
	q := `update reservations set status = 'completed'
		where status = 'accepted' and return_date < $1`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func lockCar(ctx context.Context, tx *sqlx.Tx, carID int) error {
	var id int
	if err := tx.QueryRowContext(ctx, `select id from cars where id = $1 for update`, carID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrCarNotFound
		}
		return err
	}
	return nil
}
