package usecase

// CartStoreが状態を映す先（DOMの代わり）。
// UIの部品とのつなぎ込みはhandler/view側で行う。
type CartView interface {
	RenderPanel(v PanelView)
	RenderOrderTable(v OrderView)
	UpdateBadge(count int)
	SetPanelVisible(visible bool)
	ShowConfirmation(visible bool)
	ResetOrderForm()
	ScrollToTop()
}
