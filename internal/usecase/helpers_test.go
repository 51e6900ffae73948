package usecase_test

import (
	"sync"
	"time"

	"foodcart/internal/usecase"
)

// 描画内容を記録するだけのCartView
type recordingView struct {
	mu sync.Mutex

	panels       []usecase.PanelView
	orders       []usecase.OrderView
	badge        int
	panelVisible bool
	confirmation bool
	formResets   int
	scrolls      int
}

func (v *recordingView) RenderPanel(p usecase.PanelView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panels = append(v.panels, p)
}

func (v *recordingView) RenderOrderTable(o usecase.OrderView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.orders = append(v.orders, o)
}

func (v *recordingView) UpdateBadge(count int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.badge = count
}

func (v *recordingView) SetPanelVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panelVisible = visible
}

func (v *recordingView) ShowConfirmation(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.confirmation = visible
}

func (v *recordingView) ResetOrderForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formResets++
}

func (v *recordingView) ScrollToTop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrolls++
}

func (v *recordingView) lastPanel() usecase.PanelView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panels[len(v.panels)-1]
}

func (v *recordingView) lastOrder() usecase.OrderView {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.orders[len(v.orders)-1]
}

// 時刻固定・遅延実行は手動で発火
type fakeClock struct {
	now     time.Time
	delays  []time.Duration
	pending []func()
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AfterFunc(d time.Duration, f func()) {
	c.delays = append(c.delays, d)
	c.pending = append(c.pending, f)
}

func (c *fakeClock) fire() {
	fs := c.pending
	c.pending = nil
	for _, f := range fs {
		f()
	}
}
