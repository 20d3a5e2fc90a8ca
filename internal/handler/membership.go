package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlasrent/rental-service/internal/model"
)

func (h *Handler) MembershipTiers(c echo.Context) error {
	return ok(c, http.StatusOK, h.membershipSvc.MembershipTiers())
}

func (h *Handler) MembershipStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	membership, err := h.membershipSvc.MembershipStatus(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, membership)
}

func (h *Handler) UpgradeMembership(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	var req model.UpgradeMembershipRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	membership, err := h.membershipSvc.UpgradeMembership(c.Request().Context(), actor, req.Tier)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, membership)
}

func (h *Handler) RenewMembership(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	membership, err := h.membershipSvc.RenewMembership(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, membership)
}

func (h *Handler) CancelMembership(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	membership, err := h.membershipSvc.CancelMembership(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, membership)
}
