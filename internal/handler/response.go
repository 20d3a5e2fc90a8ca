package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlasrent/rental-service/internal/errs"
)

// envelope is the uniform response shape: {success, data|error}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ok(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, envelope{Success: true, Data: data})
}

// fail maps a domain error onto its status and wraps it in the envelope.
func fail(c echo.Context, err error) error {
	return c.JSON(errs.HTTPStatus(err), envelope{Success: false, Error: err.Error()})
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
}
