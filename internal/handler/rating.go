package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlasrent/rental-service/internal/model"
)

func (h *Handler) AddRating(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	carID, err := pathID(c, "carId")
	if err != nil {
		return badRequest(c, err)
	}
	var req model.RatingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	rating, err := h.ratingSvc.AddRating(c.Request().Context(), actor, carID, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, rating)
}

func (h *Handler) UpdateRating(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	var req model.RatingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	rating, err := h.ratingSvc.UpdateRating(c.Request().Context(), actor, id, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, rating)
}

func (h *Handler) DeleteRating(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	if err := h.ratingSvc.DeleteRating(c.Request().Context(), actor, id); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}

func (h *Handler) CarRatings(c echo.Context) error {
	carID, err := pathID(c, "carId")
	if err != nil {
		return badRequest(c, err)
	}
	items, err := h.ratingSvc.CarRatings(c.Request().Context(), carID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func (h *Handler) MyRatings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	items, err := h.ratingSvc.MyRatings(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func (h *Handler) ReceivedRatings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	items, err := h.ratingSvc.ReceivedRatings(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}
