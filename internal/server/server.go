package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルーティング登録に必要なhandler一式。
type Handlers struct {
	Auth       *handler.AuthHandler
	Menu       *handler.MenuHandler
	AdminMenu  *handler.AdminMenuHandler
	Cart       *handler.CartHandler
	Order      *handler.OrderHandler
	AdminOrder *handler.AdminOrderHandler
	AdminAudit *handler.AdminAuditLogHandler
	Notify     *handler.NotifyHandler
}

// New はechoを組み立てて返す（起動はしない：テストから使えるように）。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowCredentials: true,
	}))

	RegisterRoutes(e, cfg, h)
	return e
}

// Start はサーバーを起動する。
func Start(cfg config.Config, h Handlers) error {
	e := New(cfg, h)

	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
