package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/cache"
)

func (s *Service) CreatePromotion(ctx context.Context, actor model.Actor, req model.PromotionRequest) (model.Promotion, error) {
	if !actor.Admin() {
		return model.Promotion{}, errs.ErrNotAuthorized
	}
	if !req.ValidTo.After(req.ValidFrom.Time) {
		return model.Promotion{}, errs.ErrInvalidPromoWindow
	}
	promo, err := s.repo.CreatePromotion(ctx, model.Promotion{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       req.ValidFrom.Time,
		ValidTo:         req.ValidTo.Time,
		ExtraBenefit:    req.ExtraBenefit,
	})
	if err != nil {
		return model.Promotion{}, err
	}
	s.invalidatePromotions(ctx)
	return promo, nil
}

func (s *Service) UpdatePromotion(ctx context.Context, actor model.Actor, id int, req model.PromotionRequest) (model.Promotion, error) {
	if !actor.Admin() {
		return model.Promotion{}, errs.ErrNotAuthorized
	}
	if !req.ValidTo.After(req.ValidFrom.Time) {
		return model.Promotion{}, errs.ErrInvalidPromoWindow
	}
	promo, err := s.repo.UpdatePromotion(ctx, id, model.Promotion{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       req.ValidFrom.Time,
		ValidTo:         req.ValidTo.Time,
		ExtraBenefit:    req.ExtraBenefit,
	})
	if err != nil {
		return model.Promotion{}, err
	}
	s.invalidatePromotions(ctx)
	return promo, nil
}

func (s *Service) DeletePromotion(ctx context.Context, actor model.Actor, id int) error {
	if !actor.Admin() {
		return errs.ErrNotAuthorized
	}
	if err := s.repo.DeletePromotion(ctx, id); err != nil {
		return err
	}
	s.invalidatePromotions(ctx)
	return nil
}

// Promotions lists the currently active set, public.
func (s *Service) Promotions(ctx context.Context) ([]model.Promotion, error) {
	return s.activePromotions(ctx)
}

// AllPromotions includes expired and future entries, admin only.
func (s *Service) AllPromotions(ctx context.Context, actor model.Actor) ([]model.Promotion, error) {
	if !actor.Admin() {
		return nil, errs.ErrNotAuthorized
	}
	return s.repo.ListPromotions(ctx)
}

func (s *Service) invalidatePromotions(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := cache.Delete(ctx, s.cache, activePromosKey); err != nil {
		s.log.Warn("promotion cache invalidate", zap.Error(err))
	}
}
