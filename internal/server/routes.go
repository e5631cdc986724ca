package server

import (
	"app/internal/config"
	"net/http"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h.Auth.RegisterRoutes(e)
	h.Menu.RegisterRoutes(e)
	h.AdminMenu.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.AdminOrder.RegisterRoutes(e, cfg)
	h.AdminAudit.RegisterRoutes(e, cfg)
	h.Notify.RegisterRoutes(e)
}
