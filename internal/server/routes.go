package server

import (
	"foodcart/internal/handler"
	appmw "foodcart/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// 店頭ページのルート
func RegisterStorefrontRoutes(e *echo.Echo, cartH *handler.CartHandler, orderH *handler.OrderHandler, staticDir string) {
	if staticDir != "" {
		e.Static("/", staticDir)
	}
	e.Use(appmw.SameOriginForm())
	cartH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}

// collectorのルート（フロントから直接呼ばれるのでCORSを許可）
func RegisterCollectorRoutes(e *echo.Echo, collectorH *handler.CollectorHandler) {
	e.Use(middleware.CORS())
	collectorH.RegisterRoutes(e)
}
