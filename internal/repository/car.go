package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

var carColumns = []string{
	"id", "owner_id", "make", "model", "year", "number_plates", "description",
	"rental_price", "color", "transmission", "fuel_type", "features",
	"available", "rating_score", "review_count", "created_at",
}

// listSortColumns whitelists client-supplied sort keys.
var listSortColumns = map[string]string{
	"price":       "rental_price",
	"-price":      "rental_price desc",
	"year":        "year",
	"-year":       "year desc",
	"rating":      "rating_score",
	"-rating":     "rating_score desc",
	"createdAt":   "created_at",
	"-createdAt":  "created_at desc",
	"ratingScore": "rating_score",
}

func (r *repository) CreateCar(ctx context.Context, car model.Car) (model.Car, error) {
	q, args, err := qb.Insert(carsTableName).
		Columns("owner_id", "make", "model", "year", "number_plates", "description",
			"rental_price", "color", "transmission", "fuel_type", "features", "available").
		Values(car.OwnerID, car.Make, car.Model, car.Year, car.NumberPlates, car.Description,
			car.RentalPrice, car.Color, car.Transmission, car.FuelType, car.Features, car.Available).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Car{}, err
	}
	var created model.Car
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Car{}, errs.ErrDuplicatePlates
		}
		return model.Car{}, err
	}
	return created, nil
}

func (r *repository) GetCar(ctx context.Context, id int) (model.Car, error) {
	q, args, err := qb.Select(carColumns...).
		From(carsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Car{}, err
	}
	var car model.Car
	if err := r.db.GetContext(ctx, &car, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrCarNotFound
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *repository) UpdateCar(ctx context.Context, id int, req model.CarRequest) (model.Car, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	q, args, err := qb.Update(carsTableName).
		SetMap(map[string]interface{}{
			"make":          req.Make,
			"model":         req.Model,
			"year":          req.Year,
			"number_plates": req.NumberPlates,
			"description":   req.Description,
			"rental_price":  req.RentalPrice,
			"color":         req.Color,
			"transmission":  req.Transmission,
			"fuel_type":     req.FuelType,
			"features":      pq.StringArray(req.Features),
			"available":     available,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Car{}, err
	}
	var car model.Car
	if err := r.db.GetContext(ctx, &car, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Car{}, errs.ErrCarNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Car{}, errs.ErrDuplicatePlates
		}
		return model.Car{}, err
	}
	return car, nil
}

func (r *repository) DeleteCar(ctx context.Context, id int) error {
	q, args, err := qb.Delete(carsTableName).
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
		return errs.ErrCarNotFound
	}
	return nil
}

func (r *repository) ListCars(ctx context.Context, filter model.CarFilter) ([]model.Car, int, error) {
	base := qb.Select(carColumns...).From(carsTableName)
	base = applyCarFilter(base, filter)

	if sort, ok := listSortColumns[filter.Sort]; ok {
		base = base.OrderBy(sort)
	} else {
		base = base.OrderBy("created_at desc")
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	base = base.Limit(uint64(limit)).Offset(uint64((page - 1) * limit))

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}
	r.log.Debug("ListCars", zap.String("query", query), zap.Any("args", args))

	var cars []model.Car
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, 0, err
	}

	countQ, countArgs, err := applyCarFilter(qb.Select("count(*)").From(carsTableName), filter).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func applyCarFilter(b sq.SelectBuilder, filter model.CarFilter) sq.SelectBuilder {
	if filter.Make != "" {
		b = b.Where(sq.ILike{"make": "%" + filter.Make + "%"})
	}
	if filter.Model != "" {
		b = b.Where(sq.ILike{"model": "%" + filter.Model + "%"})
	}
	if filter.Color != "" {
		b = b.Where(sq.ILike{"color": "%" + filter.Color + "%"})
	}
	if filter.Year != 0 {
		b = b.Where(sq.Eq{"year": filter.Year})
	}
	if filter.Transmission != "" {
		b = b.Where(sq.Eq{"transmission": filter.Transmission})
	}
	if filter.FuelType != "" {
		b = b.Where(sq.Eq{"fuel_type": filter.FuelType})
	}
	if filter.Available != nil {
		b = b.Where(sq.Eq{"available": *filter.Available})
	}
	if filter.MinPrice > 0 {
		b = b.Where(sq.GtOrEq{"rental_price": filter.MinPrice})
	}
	if filter.MaxPrice > 0 {
		b = b.Where(sq.LtOrEq{"rental_price": filter.MaxPrice})
	}
	if filter.MinRating > 0 {
		b = b.Where(sq.GtOrEq{"rating_score": filter.MinRating})
	}
	return b
}

func (r *repository) ListCarsByOwner(ctx context.Context, ownerID int) ([]model.Car, error) {
	q, args, err := qb.Select(carColumns...).
		From(carsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var cars []model.Car
	if err := r.db.SelectContext(ctx, &cars, q, args...); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *repository) TopRatedCars(ctx context.Context, ownerID, limit int) ([]model.Car, error) {
	q, args, err := qb.Select(carColumns...).
		From(carsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("rating_score desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var cars []model.Car
	if err := r.db.SelectContext(ctx, &cars, q, args...); err != nil {
		return nil, err
	}
	return cars, nil
}
