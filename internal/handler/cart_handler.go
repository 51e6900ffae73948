package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"foodcart/internal/usecase"
	"foodcart/internal/view"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 戻り先として許すページ
var returnPaths = map[string]bool{
	"/":      true,
	"/order": true,
}

// メニュー・カートパネルのHTTP（画面操作→CartStore）
type CartHandler struct {
	store *usecase.CartStore
	page  *view.Page
	log   *zap.Logger
}

// DI
func NewCartHandler(store *usecase.CartStore, page *view.Page, log *zap.Logger) *CartHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartHandler{store: store, page: page, log: log}
}

// /, /cart, /panel, /top を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.menu)
	e.POST("/cart", h.addToCart)
	e.POST("/cart/delete", h.deleteItem)
	e.POST("/panel/toggle", h.togglePanel)
	e.POST("/panel/hide", h.hidePanel)
	e.POST("/top", h.scrollTop)
}

func (h *CartHandler) menu(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.page.RenderMenu(&buf); err != nil {
		h.log.Error("render menu", zap.Error(err))
		return c.String(http.StatusInternalServerError, "internal error")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (h *CartHandler) addToCart(c echo.Context) error {
	_, err := h.store.AddOrMerge(c.Request().Context(), usecase.AddItemInput{
		Name:  c.FormValue("name"),
		Price: c.FormValue("price"),
		Qty:   c.FormValue("qty"),
		Img:   c.FormValue("img"),
	})
	// 不正な入力は画面には出さない（ログのみ）
	if err != nil && !errors.Is(err, usecase.ErrInvalidItem) {
		h.log.Error("add to cart", zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, returnPath(c))
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	if _, err := h.store.Remove(c.Request().Context(), c.FormValue("name")); err != nil {
		h.log.Error("delete cart item", zap.Error(err))
	}
	return c.Redirect(http.StatusSeeOther, returnPath(c))
}

func (h *CartHandler) togglePanel(c echo.Context) error {
	h.store.TogglePanel()
	return c.Redirect(http.StatusSeeOther, returnPath(c))
}

func (h *CartHandler) hidePanel(c echo.Context) error {
	h.store.HidePanel()
	return c.Redirect(http.StatusSeeOther, returnPath(c))
}

func (h *CartHandler) scrollTop(c echo.Context) error {
	h.store.ScrollToTop()
	return c.Redirect(http.StatusSeeOther, returnPath(c))
}

// フォームのreturn→Refererの順で戻り先を決める
func returnPath(c echo.Context) string {
	if p := c.FormValue("return"); returnPaths[p] {
		return p
	}
	if ref := c.Request().Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && returnPaths[u.Path] {
			return u.Path
		}
	}
	return "/"
}
