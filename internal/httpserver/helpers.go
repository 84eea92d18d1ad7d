package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bakelk/cake_shop/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// caller reads the identity injected by the auth middleware.
func caller(c echo.Context) (service.Identity, error) {
	v, ok := c.Get("user_id").(string)
	if !ok || v == "" {
		return service.Identity{}, errors.New("unauthorized")
	}
	userID, err := uuid.Parse(v)
	if err != nil {
		return service.Identity{}, errors.New("unauthorized")
	}

	role, _ := c.Get("role").(string)
	name, _ := c.Get("user_name").(string)

	return service.Identity{UserID: userID, Name: name, Role: role}, nil
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c echo.Context, l *slog.Logger, op string, err error) error {
	var status int
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	default:
		l.Error(op, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Warn(op, "status", status, "error", err)
	return echo.NewHTTPError(status, err.Error())
}
