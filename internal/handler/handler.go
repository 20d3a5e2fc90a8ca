package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/auth"
	"github.com/atlasrent/rental-service/pkg/validate"
	_ "github.com/atlasrent/rental-service/swagger"
)

type Handler struct {
	authSvc        AuthService
	carSvc         CarService
	reservationSvc ReservationService
	ratingSvc      RatingService
	membershipSvc  MembershipService
	promotionSvc   PromotionService
	jwt            auth.Config
	log            *zap.Logger
}

// Services bundles the interfaces the router depends on; in production all
// six are the same *service.Service.
type Services struct {
	Auth        AuthService
	Car         CarService
	Reservation ReservationService
	Rating      RatingService
	Membership  MembershipService
	Promotion   PromotionService
}

func New(svc Services, jwt auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:        svc.Auth,
		carSvc:         svc.Car,
		reservationSvc: svc.Reservation,
		ratingSvc:      svc.Rating,
		membershipSvc:  svc.Membership,
		promotionSvc:   svc.Promotion,
		jwt:            jwt,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api.GET("/membership/tiers", h.MembershipTiers)
	api.GET("/promotions", h.Promotions)

	api.GET("/cars", h.ListCars, h.optionalAuthMW)
	api.GET("/cars/:id", h.GetCar)
	api.GET("/cars/:carId/ratings", h.CarRatings)

	authed := api.Group("", h.authMW)

	authed.GET("/users/me", h.Me)
	authed.PUT("/users/me", h.UpdateProfile)
	authed.GET("/users", h.ListUsers, roleMW())
	authed.PUT("/users/:id", h.AdminUpdateUser, roleMW())

	authed.POST("/cars", h.CreateCar, roleMW(model.RoleOwner))
	authed.GET("/cars/my", h.MyCars, roleMW(model.RoleOwner))
	authed.GET("/cars/top-rated", h.TopRatedCars, roleMW(model.RoleOwner))
	authed.PUT("/cars/:id", h.UpdateCar, roleMW(model.RoleOwner))
	authed.DELETE("/cars/:id", h.DeleteCar, roleMW(model.RoleOwner))

	authed.POST("/reservations", h.CreateReservation, roleMW(model.RoleRenter))
	authed.GET("/reservations", h.AllReservations, roleMW())
	authed.GET("/reservations/my", h.MyReservations)
	authed.GET("/reservations/received", h.ReceivedReservations, roleMW(model.RoleOwner))
	authed.GET("/reservations/availability", h.Availability)
	authed.GET("/reservations/:id", h.GetReservation)
	authed.PUT("/reservations/:id/status", h.UpdateReservationStatus)
	authed.DELETE("/reservations/:id", h.DeleteReservation)

	authed.POST("/cars/:carId/ratings", h.AddRating, roleMW(model.RoleRenter))
	authed.PUT("/cars/:carId/ratings/:id", h.UpdateRating, roleMW(model.RoleRenter))
	authed.DELETE("/cars/:carId/ratings/:id", h.DeleteRating)
	authed.GET("/ratings/my", h.MyRatings)
	authed.GET("/ratings/received", h.ReceivedRatings, roleMW(model.RoleOwner))

	authed.GET("/membership", h.MembershipStatus, roleMW(model.RoleRenter))
	authed.POST("/membership/upgrade", h.UpgradeMembership, roleMW(model.RoleRenter))
	authed.POST("/membership/renew", h.RenewMembership, roleMW(model.RoleRenter))
	authed.POST("/membership/cancel", h.CancelMembership, roleMW(model.RoleRenter))

	authed.GET("/promotions/all", h.AllPromotions, roleMW())
	authed.POST("/promotions", h.CreatePromotion, roleMW())
	authed.PUT("/promotions/:id", h.UpdatePromotion, roleMW())
	authed.DELETE("/promotions/:id", h.DeletePromotion, roleMW())

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
