package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"foodcart/internal/handler"
	"foodcart/internal/infra/repository"
	"foodcart/internal/usecase"
	"foodcart/internal/view"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// 遅延実行は手動で発火
type stubClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []func()
}

func (c *stubClock) Now() time.Time { return c.now }

func (c *stubClock) AfterFunc(_ time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, f)
}

func (c *stubClock) fire() {
	c.mu.Lock()
	fs := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, f := range fs {
		f()
	}
}

type storefront struct {
	e     *echo.Echo
	kv    *repository.MemoryKVStore
	clock *stubClock
	store *usecase.CartStore
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()

	page, err := view.NewPage(view.DefaultMenu())
	require.NoError(t, err)

	kv := repository.NewMemoryKVStore()
	clock := &stubClock{now: time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)}
	store := usecase.NewCartStore(kv, page, clock, nil)
	store.Init(context.Background())

	e := echo.New()
	handler.NewCartHandler(store, page, nil).RegisterRoutes(e)
	handler.NewOrderHandler(store, page, nil).RegisterRoutes(e)

	return &storefront{e: e, kv: kv, clock: clock, store: store}
}

func newFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func serve(s *storefront, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *storefront) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return serve(s, newFormRequest(path, form))
}

func (s *storefront) get(t *testing.T, path string) *goquery.Document {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := serve(s, req)
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func addForm(name, price, qty string) url.Values {
	return url.Values{
		"name":  {name},
		"price": {price},
		"qty":   {qty},
		"img":   {"/images/" + strings.ToLower(name) + ".jpg"},
	}
}
