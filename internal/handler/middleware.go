package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/auth"
	"github.com/atlasrent/rental-service/pkg/logger"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "

	actorKey = "actorKey"
)

// authMW requires a valid bearer token and stores the resolved actor on the
// context.
func (h *Handler) authMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := h.actorFromHeader(c)
		if err != nil {
			return fail(c, err)
		}
		c.Set(actorKey, actor)
		return next(c)
	}
}

// optionalAuthMW resolves the actor when a token is present but lets
// anonymous requests through; listings use it for price augmentation.
func (h *Handler) optionalAuthMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(authorizationHeader) != "" {
			actor, err := h.actorFromHeader(c)
			if err != nil {
				return fail(c, err)
			}
			c.Set(actorKey, actor)
		}
		return next(c)
	}
}

func (h *Handler) actorFromHeader(c echo.Context) (model.Actor, error) {
	raw := c.Request().Header.Get(authorizationHeader)
	token := strings.TrimPrefix(raw, bearerPrefix)
	if token == "" {
		return model.Actor{}, errs.ErrInvalidToken
	}
	claims, err := auth.Parse(h.jwt, token)
	if err != nil {
		return model.Actor{}, errors.Wrap(errs.ErrInvalidToken, err.Error())
	}
	return model.Actor{ID: claims.UserID, Role: model.Role(claims.Role)}, nil
}

// roleMW restricts a route to the given roles; admins always pass.
func roleMW(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := actorFrom(c)
			if err != nil {
				return fail(c, err)
			}
			if actor.Admin() {
				return next(c)
			}
			for _, role := range roles {
				if actor.Role == role {
					return next(c)
				}
			}
			return fail(c, errors.Wrap(errs.ErrNotAuthorized, "insufficient role"))
		}
	}
}

func actorFrom(c echo.Context) (model.Actor, error) {
	actor, ok := c.Get(actorKey).(model.Actor)
	if !ok {
		return model.Actor{}, errors.Wrap(errs.ErrInvalidToken, "no authenticated actor")
	}
	return actor, nil
}

// maybeActor returns nil for anonymous requests.
func maybeActor(c echo.Context) *model.Actor {
	if actor, ok := c.Get(actorKey).(model.Actor); ok {
		return &actor
	}
	return nil
}

func requestLoggerConfig() middleware.RequestLoggerConfig {
	cfg := logger.Log{LogLevel: zapcore.DebugLevel, Sink: ""}
	log := logger.NewLogger(cfg, "echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}
