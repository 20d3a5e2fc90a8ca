package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlasrent/rental-service/internal/model"
)

func (h *Handler) Promotions(c echo.Context) error {
	items, err := h.promotionSvc.Promotions(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func (h *Handler) AllPromotions(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	items, err := h.promotionSvc.AllPromotions(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func (h *Handler) CreatePromotion(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	var req model.PromotionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	promo, err := h.promotionSvc.CreatePromotion(c.Request().Context(), actor, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, promo)
}

func (h *Handler) UpdatePromotion(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	var req model.PromotionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	promo, err := h.promotionSvc.UpdatePromotion(c.Request().Context(), actor, id, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, promo)
}

func (h *Handler) DeletePromotion(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	if err := h.promotionSvc.DeletePromotion(c.Request().Context(), actor, id); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}
