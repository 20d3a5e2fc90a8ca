package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/atlasrent/rental-service/internal/model"
)

type authPayload struct {
	User  model.User         `json:"user"`
	Token model.AuthResponse `json:"auth"`
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	user, token, err := h.authSvc.Register(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, authPayload{User: user, Token: token})
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	user, token, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, authPayload{User: user, Token: token})
}

func (h *Handler) Me(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	user, err := h.authSvc.Me(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	var req model.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	user, err := h.authSvc.UpdateProfile(c.Request().Context(), actor, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, user)
}

func (h *Handler) ListUsers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	users, err := h.authSvc.ListUsers(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, users)
}

func (h *Handler) AdminUpdateUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	var req model.AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	user, err := h.authSvc.AdminUpdateUser(c.Request().Context(), actor, id, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, user)
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, errors.Errorf("invalid %s", name)
	}
	return id, nil
}
