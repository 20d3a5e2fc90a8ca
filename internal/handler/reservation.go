package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/atlasrent/rental-service/internal/model"
)

func (h *Handler) CreateReservation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	rsv, err := h.reservationSvc.CreateReservation(c.Request().Context(), actor, req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusCreated, rsv)
}

func (h *Handler) UpdateReservationStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	var req model.UpdateReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(c, err)
	}
	result, err := h.reservationSvc.UpdateReservationStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, result)
}

func (h *Handler) DeleteReservation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	if err := h.reservationSvc.DeleteReservation(c.Request().Context(), actor, id); err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, nil)
}

// Availability answers `?carId&startDate&endDate`; dates accept RFC3339 or
// plain YYYY-MM-DD.
func (h *Handler) Availability(c echo.Context) error {
	carID, err := queryInt(c, "carId")
	if err != nil {
		return badRequest(c, err)
	}
	from, err := parseDate(c.QueryParam("startDate"))
	if err != nil {
		return badRequest(c, errors.New("invalid startDate"))
	}
	till, err := parseDate(c.QueryParam("endDate"))
	if err != nil {
		return badRequest(c, errors.New("invalid endDate"))
	}
	availability, err := h.reservationSvc.Availability(c.Request().Context(), carID, from, till)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, availability)
}

func (h *Handler) GetReservation(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	rsv, err := h.reservationSvc.GetReservation(c.Request().Context(), actor, id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, rsv)
}

func (h *Handler) MyReservations(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	items, err := h.reservationSvc.MyReservations(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func (h *Handler) ReceivedReservations(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	items, err := h.reservationSvc.ReceivedReservations(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func (h *Handler) AllReservations(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return fail(c, err)
	}
	items, err := h.reservationSvc.AllReservations(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, http.StatusOK, items)
}

func queryInt(c echo.Context, name string) (int, error) {
	var id int
	if err := echo.QueryParamsBinder(c).Int(name, &id).BindError(); err != nil || id < 1 {
		return 0, errors.Errorf("invalid %s", name)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}
