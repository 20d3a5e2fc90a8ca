package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/atlasrent/rental-service/internal/model"
)

func (h *Handler) CreateCar(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	var req model.CarRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	car, err := h.carSvc.CreateCar(c.Request().Context(), actor, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, car)
}

func (h *Handler) GetCar(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	car, err := h.carSvc.GetCar(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, car)
}

func (h *Handler) UpdateCar(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	var req model.CarRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	car, err := h.carSvc.UpdateCar(c.Request().Context(), actor, id, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, car)
}

func (h *Handler) DeleteCar(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	if err := h.carSvc.DeleteCar(c.Request().Context(), actor, id); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}

func (h *Handler) ListCars(c echo.Context) error {
	filter := carFilterFromQuery(c)
	list, err := h.carSvc.ListCars(c.Request().Context(), maybeActor(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, list)
}

func (h *Handler) MyCars(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	cars, err := h.carSvc.MyCars(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, cars)
}

func (h *Handler) TopRatedCars(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	cars, err := h.carSvc.TopRatedCars(c.Request().Context(), actor, limit)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, cars)
}

// carFilterFromQuery maps the optional listing criteria; absent params leave
// zero values and are skipped by the repository.
func carFilterFromQuery(c echo.Context) model.CarFilter {
	filter := model.CarFilter{
		Make:         c.QueryParam("make"),
		Model:        c.QueryParam("model"),
		Transmission: c.QueryParam("transmission"),
		FuelType:     c.QueryParam("fuelType"),
		Color:        c.QueryParam("color"),
		Sort:         c.QueryParam("sort"),
	}
	filter.Year, _ = strconv.Atoi(c.QueryParam("year"))
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	filter.MinPrice, _ = strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	filter.MinRating, _ = strconv.ParseFloat(c.QueryParam("minRating"), 64)
	if raw := c.QueryParam("available"); raw != "" {
		if avail, err := strconv.ParseBool(raw); err == nil {
			filter.Available = &avail
		}
	}
	return filter
}
