package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

var promotionColumns = []string{
	"id", "title", "description", "discount_percent", "valid_from", "valid_to", "extra_benefit",
}

func (r *repository) CreatePromotion(ctx context.Context, promo model.Promotion) (model.Promotion, error) {
	q, args, err := qb.Insert(promotionsTableName).
		Columns("title", "description", "discount_percent", "valid_from", "valid_to", "extra_benefit").
		Values(promo.Title, promo.Description, promo.DiscountPercent, promo.ValidFrom, promo.ValidTo, promo.ExtraBenefit).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Promotion{}, err
	}
	var created model.Promotion
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.Promotion{}, err
	}
	return created, nil
}

func (r *repository) UpdatePromotion(ctx context.Context, id int, promo model.Promotion) (model.Promotion, error) {
	q, args, err := qb.Update(promotionsTableName).
		SetMap(map[string]interface{}{
			"title":            promo.Title,
			"description":      promo.Description,
			"discount_percent": promo.DiscountPercent,
			"valid_from":       promo.ValidFrom,
			"valid_to":         promo.ValidTo,
			"extra_benefit":    promo.ExtraBenefit,
		}).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Promotion{}, err
	}
	var updated model.Promotion
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Promotion{}, errs.ErrPromotionNotFound
		}
		return model.Promotion{}, err
	}
	return updated, nil
}

func (r *repository) DeletePromotion(ctx context.Context, id int) error {
	q, args, err := qb.Delete(promotionsTableName).
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
		return errs.ErrPromotionNotFound
	}
	return nil
}

// ListPromotions keeps expired entries visible; the admin endpoint manages
// the full set.
func (r *repository) ListPromotions(ctx context.Context) ([]model.Promotion, error) {
	q, args, err := qb.Select(promotionColumns...).
		From(promotionsTableName).
		OrderBy("valid_to desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Promotion, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ActivePromotions(ctx context.Context, now time.Time) ([]model.Promotion, error) {
	q, args, err := qb.Select(promotionColumns...).
		From(promotionsTableName).
		Where(sq.LtOrEq{"valid_from": now}).
		Where(sq.GtOrEq{"valid_to": now}).
		OrderBy("discount_percent desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Promotion, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
