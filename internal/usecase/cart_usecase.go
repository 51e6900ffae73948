package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"foodcart/internal/domain/model"
	repo "foodcart/internal/repository"
	"foodcart/internal/validator"

	"go.uber.org/zap"
)

// 注文完了メッセージを消すまでの時間
const confirmationDelay = 5 * time.Second

// toISOString() と同じ形
const historyDateLayout = "2006-01-02T15:04:05.000Z"

// 画面から来た追加フォームの値（未検証）
type AddItemInput struct {
	Name  string
	Price string
	Qty   string
	Img   string
}

// CartStore はページ1枚分のカートを持つ。
// 変更のたびに保存→再描画まで同期で終える。
type CartStore struct {
	mu sync.Mutex

	kv    repo.KVStore
	view  CartView
	clock Clock
	log   *zap.Logger

	cart         model.Cart
	orderTotal   float64
	panelVisible bool
}

// DI
func NewCartStore(kv repo.KVStore, view CartView, clock Clock, log *zap.Logger) *CartStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartStore{
		kv:    kv,
		view:  view,
		clock: clock,
		log:   log,
		cart:  model.Cart{},
	}
}

// ページ表示時の初期化（読み込み→描画）
func (s *CartStore) Init(ctx context.Context) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.load(ctx)
	_ = s.save(ctx)
	s.renderAll()
	return s.cart.Clone()
}

// 保存済みのカートを読む。壊れていても空カートで返す。
func (s *CartStore) Load(ctx context.Context) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.load(ctx)
	return s.cart.Clone()
}

// 今のカートで保存を上書き
func (s *CartStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx)
}

// カートに追加（同一商品は数量加算）。
// 価格・数量が数値でなければ何もしない。
func (s *CartStore) AddOrMerge(ctx context.Context, in AddItemInput) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("add to cart",
		zap.String("name", in.Name),
		zap.String("price", in.Price),
		zap.String("qty", in.Qty),
		zap.String("img", in.Img),
	)

	item, err := validator.ParseLineItem(in.Name, in.Price, in.Qty, in.Img)
	if err != nil {
		s.log.Warn("invalid price or quantity for food item",
			zap.String("name", in.Name),
			zap.String("price", in.Price),
			zap.String("qty", in.Qty),
			zap.Error(err),
		)
		return s.cart.Clone(), errors.Join(ErrInvalidItem, err)
	}

	if !s.cart.CanAdd(item) {
		s.log.Warn("quantity limit exceeded",
			zap.String("name", item.Name),
			zap.Int("qty", item.Qty),
			zap.Int("max", model.MaxQuantity),
		)
		return s.cart.Clone(), errors.Join(ErrInvalidItem, validator.ErrInvalidQuantity)
	}

	s.cart = s.cart.AddOrMerge(item)
	err = s.save(ctx)
	s.renderAll()
	return s.cart.Clone(), err
}

// nameの明細を削除（無くてもOK）
func (s *CartStore) Remove(ctx context.Context, name string) (model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = s.cart.Remove(name)
	err := s.save(ctx)
	s.renderAll()
	return s.cart.Clone(), err
}

// バッジに出す数量合計
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.ItemCount()
}

// 今のカートのコピー
func (s *CartStore) Cart() model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

// 注文確認テーブルで最後に計算した合計
func (s *CartStore) OrderTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orderTotal
}

// 注文確定。履歴に追記してカートを空にする。
func (s *CartStore) Checkout(ctx context.Context) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 合計は描画し直してから読む
	s.renderOrderTable()

	history, err := s.loadHistory(ctx)
	if err != nil {
		return model.HistoryEntry{}, err
	}
	entry := model.HistoryEntry{
		Date:  s.clock.Now().UTC().Format(historyDateLayout),
		Items: s.cart.Clone(),
		Total: s.orderTotal,
	}
	history = append(history, entry)

	raw, err := json.Marshal(history)
	if err != nil {
		s.log.Error("encode order history", zap.Error(err))
		return model.HistoryEntry{}, err
	}
	if err := s.kv.Set(ctx, repo.KeyOrderHistory, string(raw)); err != nil {
		s.log.Error("save order history", zap.Error(err))
		return model.HistoryEntry{}, err
	}

	//完了メッセージ（5秒後に消える）
	s.view.ShowConfirmation(true)
	s.clock.AfterFunc(confirmationDelay, func() {
		s.view.ShowConfirmation(false)
	})

	//カートを空に
	if err := s.kv.Remove(ctx, repo.KeyCart); err != nil {
		s.log.Error("remove cart", zap.Error(err))
	}
	s.cart = model.Cart{}
	s.renderAll()
	s.view.ResetOrderForm()

	s.log.Info("order placed",
		zap.String("date", entry.Date),
		zap.Int("items", len(entry.Items)),
		zap.Float64("total", entry.Total),
	)
	return entry, nil
}

// カートパネルの表示切り替え
func (s *CartStore) TogglePanel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.panelVisible = !s.panelVisible
	s.view.SetPanelVisible(s.panelVisible)
	return s.panelVisible
}

// パネル外のクリックで閉じる
func (s *CartStore) HidePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.panelVisible = false
	s.view.SetPanelVisible(false)
}

func (s *CartStore) PanelVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.panelVisible
}

func (s *CartStore) ScrollToTop() {
	s.view.ScrollToTop()
}

func (s *CartStore) load(ctx context.Context) model.Cart {
	raw, err := s.kv.Get(ctx, repo.KeyCart)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}
	}
	if err != nil {
		s.log.Warn("read cart", zap.Error(err))
		return model.Cart{}
	}

	cart, dropped, err := decodeCart(raw)
	if err != nil {
		s.log.Warn("malformed cart in storage", zap.Error(err))
		return model.Cart{}
	}
	for _, d := range dropped {
		s.log.Warn("invalid item found in cart",
			zap.String("name", d.Name),
			zap.ByteString("price", d.Price),
			zap.ByteString("qty", d.Qty),
		)
	}
	return cart
}

func (s *CartStore) save(ctx context.Context) error {
	raw, err := encodeCart(s.cart)
	if err != nil {
		s.log.Error("encode cart", zap.Error(err))
		return err
	}
	if err := s.kv.Set(ctx, repo.KeyCart, raw); err != nil {
		s.log.Error("save cart", zap.Error(err))
		return err
	}
	s.log.Debug("cart saved", zap.String("cart", raw))
	return nil
}

// 履歴は追記のみ。読めないときは上書きせずエラーを返す。
func (s *CartStore) loadHistory(ctx context.Context) (model.HistoryLog, error) {
	raw, err := s.kv.Get(ctx, repo.KeyOrderHistory)
	if errors.Is(err, repo.ErrNotFound) {
		return model.HistoryLog{}, nil
	}
	if err != nil {
		s.log.Error("read order history", zap.Error(err))
		return nil, err
	}

	var history model.HistoryLog
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		s.log.Error("malformed order history in storage",
			zap.String("raw", raw),
			zap.Error(err),
		)
		return nil, errors.Join(ErrMalformedHistory, err)
	}
	return history, nil
}

func (s *CartStore) renderAll() {
	s.renderPanel()
	s.renderOrderTable()
	s.view.UpdateBadge(s.cart.ItemCount())
}

func (s *CartStore) renderPanel() {
	v := BuildPanel(s.cart)
	for _, name := range v.Skipped {
		s.log.Warn("invalid price or quantity for item", zap.String("name", name))
	}
	s.view.RenderPanel(v)
}

func (s *CartStore) renderOrderTable() {
	v := BuildOrderTable(s.cart)
	s.orderTotal = v.TotalValue
	s.view.RenderOrderTable(v)
}
