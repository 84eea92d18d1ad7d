package httpserver

import (
	"net/http"

	"github.com/bakelk/cake_shop/internal/logging"
	"github.com/bakelk/cake_shop/internal/service"
	"github.com/bakelk/cake_shop/internal/transport"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type WalletHTTP struct {
	Svc *service.WalletService
}

func (h *WalletHTTP) ListDeliveryInfos(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wallet.list")

	id, err := caller(c)
	if err != nil {
		l.Warn("list_delivery_infos_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	infos, err := h.Svc.List(ctx, id.UserID)
	if err != nil {
		return respondError(c, l, "list_delivery_infos_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": infos})
}

func (h *WalletHTTP) GetDeliveryInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wallet.get")

	id, err := caller(c)
	if err != nil {
		l.Warn("get_delivery_info_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	infoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_delivery_info_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	info, err := h.Svc.Get(ctx, infoID, id.UserID)
	if err != nil {
		return respondError(c, l, "get_delivery_info_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": info})
}

func (h *WalletHTTP) CreateDeliveryInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wallet.create")

	id, err := caller(c)
	if err != nil {
		l.Warn("create_delivery_info_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.DeliveryInfoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_delivery_info_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	info, err := h.Svc.Create(ctx, id.UserID, req)
	if err != nil {
		return respondError(c, l, "create_delivery_info_error", err)
	}

	l.Info("create_delivery_info_success", "delivery_info_id", info.ID)
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "data": info})
}

func (h *WalletHTTP) UpdateDeliveryInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wallet.update")

	id, err := caller(c)
	if err != nil {
		l.Warn("update_delivery_info_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	infoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_delivery_info_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req transport.DeliveryInfoRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_delivery_info_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	info, err := h.Svc.Update(ctx, infoID, id.UserID, req)
	if err != nil {
		return respondError(c, l, "update_delivery_info_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": info})
}

func (h *WalletHTTP) DeleteDeliveryInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wallet.delete")

	id, err := caller(c)
	if err != nil {
		l.Warn("delete_delivery_info_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	infoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_delivery_info_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Delete(ctx, infoID, id.UserID); err != nil {
		return respondError(c, l, "delete_delivery_info_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "delivery info deleted"})
}
