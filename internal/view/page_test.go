package view

import (
	"bytes"
	"testing"

	"foodcart/internal/domain/model"
	"foodcart/internal/usecase"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPage(t *testing.T) *Page {
	t.Helper()
	p, err := NewPage(DefaultMenu())
	require.NoError(t, err)
	return p
}

func render(t *testing.T, fn func(w *bytes.Buffer) error) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fn(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func sampleCart() model.Cart {
	return model.Cart{
		{Name: "Pizza", Price: 10, Qty: 2, Img: "pizza.jpg"},
		{Name: "Soda", Price: 3, Qty: 2, Img: "soda.jpg"},
	}
}

func TestPage_RenderMenu_Panel(t *testing.T) {
	p := newTestPage(t)
	cart := sampleCart()
	p.RenderPanel(usecase.BuildPanel(cart))
	p.UpdateBadge(cart.ItemCount())

	doc := render(t, func(w *bytes.Buffer) error { return p.RenderMenu(w) })

	//ヘッダー5列目が合計
	assert.Equal(t, "$26.00", doc.Find("#cart-content table th:nth-child(5)").Text())
	assert.Equal(t, 2, doc.Find("#cart-content .btn-delete").Length())
	assert.Equal(t, "4", doc.Find("#shopping-cart .badge").Text())

	row := doc.Find("#cart-content tr").Eq(1).Find("td")
	assert.Equal(t, "Pizza", row.Eq(1).Text())
	assert.Equal(t, "$10.00", row.Eq(2).Text())
	assert.Equal(t, "2", row.Eq(3).Text())
	assert.Equal(t, "$20.00", row.Eq(4).Text())
	src, _ := row.Eq(0).Find("img").Attr("src")
	assert.Equal(t, "pizza.jpg", src)

	//パネルは閉じた状態
	style, _ := doc.Find("#cart-content").Attr("style")
	assert.Contains(t, style, "display: none")
	assert.Equal(t, 6, doc.Find("form.food-menu-box").Length())
}

func TestPage_RenderMenu_PanelVisible(t *testing.T) {
	p := newTestPage(t)
	p.SetPanelVisible(true)

	doc := render(t, func(w *bytes.Buffer) error { return p.RenderMenu(w) })

	_, hidden := doc.Find("#cart-content").Attr("style")
	assert.False(t, hidden)
	assert.Equal(t, 1, doc.Find("form.cart-overlay").Length())
}

func TestPage_RenderOrder(t *testing.T) {
	p := newTestPage(t)
	p.RenderOrderTable(usecase.BuildOrderTable(sampleCart()))

	doc := render(t, func(w *bytes.Buffer) error { return p.RenderOrder(w) })

	//ヘッダー6列目が合計
	assert.Equal(t, "$26.00", doc.Find(".tbl-full th:nth-child(6)").Text())

	rows := doc.Find(".tbl-full tr")
	require.Equal(t, 3, rows.Length())
	assert.Equal(t, "1", rows.Eq(1).Find("td").First().Text())
	assert.Equal(t, "2", rows.Eq(2).Find("td").First().Text())
	assert.Equal(t, "Soda", rows.Eq(2).Find("td").Eq(2).Text())

	ret, _ := rows.Eq(1).Find("input[name=return]").Attr("value")
	assert.Equal(t, "/order", ret)

	style, _ := doc.Find("#confirmation-message").Attr("style")
	assert.Contains(t, style, "display: none")
}

func TestPage_ConfirmationAndFormReset(t *testing.T) {
	p := newTestPage(t)
	p.FillOrderForm(OrderForm{FullName: "Ram", Contact: "98000", Email: "ram@example.com", Address: "Kathmandu"})

	doc := render(t, func(w *bytes.Buffer) error { return p.RenderOrder(w) })
	name, _ := doc.Find("#full-name").Attr("value")
	assert.Equal(t, "Ram", name)
	assert.Equal(t, "Kathmandu", doc.Find("#address").Text())

	p.ShowConfirmation(true)
	p.ResetOrderForm()

	doc = render(t, func(w *bytes.Buffer) error { return p.RenderOrder(w) })
	_, hidden := doc.Find("#confirmation-message").Attr("style")
	assert.False(t, hidden)
	name, _ = doc.Find("#full-name").Attr("value")
	assert.Empty(t, name)
}

func TestPage_SanitizesItemStrings(t *testing.T) {
	p := newTestPage(t)
	p.RenderPanel(usecase.BuildPanel(model.Cart{
		{Name: "<b>Momo</b>", Price: 5, Qty: 1, Img: `x.jpg"><script>alert(1)</script>`},
		{Name: "Fish & Chips", Price: 4, Qty: 1, Img: "fish.jpg"},
	}))

	snap := p.Snapshot()
	require.Len(t, snap.Panel.Rows, 2)
	assert.Equal(t, "Momo", snap.Panel.Rows[0].Name)
	assert.NotContains(t, snap.Panel.Rows[0].Img, "<script>")
	assert.Equal(t, "Fish & Chips", snap.Panel.Rows[1].Name)

	//削除フォームは保存時の名前のまま
	assert.Equal(t, "<b>Momo</b>", snap.Panel.Rows[0].Key)

	doc := render(t, func(w *bytes.Buffer) error { return p.RenderMenu(w) })
	assert.Equal(t, 0, doc.Find("#cart-content b").Length())
	key, _ := doc.Find("#cart-content tr").Eq(1).Find("input[name=name]").Attr("value")
	assert.Equal(t, "<b>Momo</b>", key)
	assert.Equal(t, "Fish & Chips", doc.Find("#cart-content tr").Eq(2).Find("td").Eq(1).Text())
}

func TestPage_ScrollTopIsOneShot(t *testing.T) {
	p := newTestPage(t)
	p.ScrollToTop()

	var first, second bytes.Buffer
	require.NoError(t, p.RenderMenu(&first))
	require.NoError(t, p.RenderMenu(&second))

	assert.Contains(t, first.String(), "window.scrollTo")
	assert.NotContains(t, second.String(), "window.scrollTo")
}
