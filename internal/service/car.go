package service

import (
	"context"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/cache"
)

const (
	activePromosKey = "promotions:active"
	activePromosTTL = time.Minute
)

func (s *Service) CreateCar(ctx context.Context, actor model.Actor, req model.CarRequest) (model.Car, error) {
	if actor.Role != model.RoleOwner && !actor.Admin() {
		return model.Car{}, errs.ErrOwnerOnly
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return s.repo.CreateCar(ctx, model.Car{
		OwnerID:      actor.ID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		NumberPlates: req.NumberPlates,
		Description:  req.Description,
		RentalPrice:  req.RentalPrice,
		Color:        req.Color,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Features:     pq.StringArray(req.Features),
		Available:    available,
	})
}

func (s *Service) UpdateCar(ctx context.Context, actor model.Actor, id int, req model.CarRequest) (model.Car, error) {
	car, err := s.repo.GetCar(ctx, id)
	if err != nil {
		return model.Car{}, err
	}
	if car.OwnerID != actor.ID && !actor.Admin() {
		return model.Car{}, errs.ErrNotAuthorized
	}
	return s.repo.UpdateCar(ctx, id, req)
}

func (s *Service) DeleteCar(ctx context.Context, actor model.Actor, id int) error {
	car, err := s.repo.GetCar(ctx, id)
	if err != nil {
		return err
	}
	if car.OwnerID != actor.ID && !actor.Admin() {
		return errs.ErrNotAuthorized
	}
	return s.repo.DeleteCar(ctx, id)
}

func (s *Service) GetCar(ctx context.Context, id int) (model.Car, error) {
	return s.repo.GetCar(ctx, id)
}

// ListCars returns the filtered page. For authenticated callers each entry
// is augmented with two independent figures: the renter's membership price
// and the best active promotion quote. The two are never composed.
func (s *Service) ListCars(ctx context.Context, actor *model.Actor, filter model.CarFilter) (model.CarList, error) {
	var (
		cars   []model.Car
		total  int
		promos []model.Promotion
		tier   model.MembershipTier
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cars, total, err = s.repo.ListCars(gctx, filter)
		return err
	})
	if actor != nil {
		g.Go(func() error {
			var err error
			promos, err = s.activePromotions(gctx)
			return err
		})
		if actor.Role == model.RoleRenter {
			g.Go(func() error {
				user, err := s.repo.GetUser(gctx, actor.ID)
				if err != nil {
					return err
				}
				tier = user.MembershipTier
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return model.CarList{}, err
	}

	items := make([]model.CarView, 0, len(cars))
	for _, car := range cars {
		view := model.CarView{Car: car}
		if actor != nil {
			if actor.Role == model.RoleRenter {
				price := MemberPrice(car.RentalPrice, tier)
				view.DiscountedPrice = &price
			}
			view.Promo = PromoQuote(car.RentalPrice, promos)
		}
		items = append(items, view)
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return model.CarList{
		Items:      items,
		Pagination: model.Pagination{Page: page, Limit: limit, Total: total},
	}, nil
}

func (s *Service) MyCars(ctx context.Context, actor model.Actor) ([]model.Car, error) {
	if actor.Role != model.RoleOwner && !actor.Admin() {
		return nil, errs.ErrOwnerOnly
	}
	return s.repo.ListCarsByOwner(ctx, actor.ID)
}

func (s *Service) TopRatedCars(ctx context.Context, actor model.Actor, limit int) ([]model.Car, error) {
	if actor.Role != model.RoleOwner && !actor.Admin() {
		return nil, errs.ErrOwnerOnly
	}
	if limit < 1 || limit > 50 {
		limit = 5
	}
	return s.repo.TopRatedCars(ctx, actor.ID, limit)
}

// activePromotions serves the validity-window query through a short-lived
// cache; listing traffic dominates promotion churn by orders of magnitude.
func (s *Service) activePromotions(ctx context.Context) ([]model.Promotion, error) {
	if s.cache != nil {
		var cached []model.Promotion
		if err := cache.GetJSON(ctx, s.cache, activePromosKey, &cached); err == nil {
			return cached, nil
		}
	}
	promos, err := s.repo.ActivePromotions(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, activePromosKey, promos, activePromosTTL); err != nil {
			s.log.Warn("promotion cache write", zap.Error(err))
		}
	}
	return promos, nil
}
