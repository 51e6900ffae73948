package view

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"sync"

	"foodcart/internal/usecase"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// 注文フォームの入力値（送信後にリセット）
type OrderForm struct {
	FullName string
	Contact  string
	Email    string
	Address  string
}

// 画面に出している状態のコピー
type Snapshot struct {
	Panel        usecase.PanelView
	Order        usecase.OrderView
	Badge        int
	PanelVisible bool
	Confirmation bool
	ScrollTop    bool
	OrderForm    OrderForm
}

type pageData struct {
	Snapshot
	Menu []menuRow
}

type menuRow struct {
	Name  string
	Price string
	Img   string
}

// Page は CartView のHTML実装。
// 完了メッセージのタイマーは別goroutineから呼ばれるのでロックで守る。
type Page struct {
	mu     sync.RWMutex
	state  Snapshot
	menu   []menuRow
	tmpl   *template.Template
	policy *bluemonday.Policy
}

var _ usecase.CartView = (*Page)(nil)

// DI
func NewPage(menu []MenuItem) (*Page, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	p := &Page{
		tmpl:   tmpl,
		policy: bluemonday.StrictPolicy(),
	}
	for _, m := range menu {
		p.menu = append(p.menu, menuRow{
			Name:  p.clean(m.Name),
			Price: usecase.FormatMoney(m.Price),
			Img:   p.clean(m.Img),
		})
	}
	return p, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("_root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func (p *Page) RenderPanel(v usecase.PanelView) {
	for i := range v.Rows {
		v.Rows[i].Name = p.clean(v.Rows[i].Name)
		v.Rows[i].Img = p.clean(v.Rows[i].Img)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Panel = v
}

func (p *Page) RenderOrderTable(v usecase.OrderView) {
	for i := range v.Rows {
		v.Rows[i].Name = p.clean(v.Rows[i].Name)
		v.Rows[i].Img = p.clean(v.Rows[i].Img)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Order = v
}

func (p *Page) UpdateBadge(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Badge = count
}

func (p *Page) SetPanelVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.PanelVisible = visible
}

func (p *Page) ShowConfirmation(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Confirmation = visible
}

func (p *Page) ResetOrderForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.OrderForm = OrderForm{}
}

// 次の描画で先頭へスクロール
func (p *Page) ScrollToTop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.ScrollTop = true
}

// 送信された注文フォームの値を保持
func (p *Page) FillOrderForm(f OrderForm) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.OrderForm = f
}

func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// メニューページ（カートパネル付き）
func (p *Page) RenderMenu(w io.Writer) error {
	return p.execute(w, "menu")
}

// 注文確認ページ
func (p *Page) RenderOrder(w io.Writer) error {
	return p.execute(w, "order")
}

func (p *Page) execute(w io.Writer, name string) error {
	p.mu.Lock()
	data := pageData{Snapshot: p.state, Menu: p.menu}
	// スクロールは1回だけ
	p.state.ScrollTop = false
	p.mu.Unlock()

	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// タグを落とした素のテキスト（エスケープはテンプレート側）
func (p *Page) clean(s string) string {
	return html.UnescapeString(p.policy.Sanitize(s))
}
