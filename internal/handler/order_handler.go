package handler

import (
	"bytes"
	"net/http"

	"foodcart/internal/usecase"
	"foodcart/internal/view"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// /order（注文確認・確定）のHTTP
type OrderHandler struct {
	store *usecase.CartStore
	page  *view.Page
	log   *zap.Logger
}

// DI
func NewOrderHandler(store *usecase.CartStore, page *view.Page, log *zap.Logger) *OrderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderHandler{store: store, page: page, log: log}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/order", h.orderPage)
	e.POST("/order", h.checkout)
}

func (h *OrderHandler) orderPage(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.page.RenderOrder(&buf); err != nil {
		h.log.Error("render order", zap.Error(err))
		return c.String(http.StatusInternalServerError, "internal error")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *OrderHandler) checkout(c echo.Context) error {
	//失敗時は入力を残す（成功時はCartStoreがリセット）
	h.page.FillOrderForm(view.OrderForm{
		FullName: c.FormValue("full_name"),
		Contact:  c.FormValue("contact"),
		Email:    c.FormValue("email"),
		Address:  c.FormValue("address"),
	})

	if _, err := h.store.Checkout(c.Request().Context()); err != nil {
		h.log.Error("checkout", zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, "/order")
}
