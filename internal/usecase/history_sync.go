package usecase

import (
	"context"
	"errors"

	repo "foodcart/internal/repository"

	"go.uber.org/zap"
)

type SyncState string

const (
	SyncStart     SyncState = "START"
	SyncNoData    SyncState = "NO_DATA"
	SyncUnchanged SyncState = "UNCHANGED"
	SyncSending   SyncState = "SENDING"
	SyncSent      SyncState = "SENT"
	SyncFailed    SyncState = "FAILED"
)

// 1回分の同期結果
type SyncResult struct {
	State   SyncState
	Payload string
	Err     error
}

// 注文履歴をcollectorへ届ける。
// リトライしたい場合はこれを包んで渡す。
type HistoryDeliverer interface {
	Deliver(ctx context.Context, key string, value string) error
}

// 起動時に1回だけ走る注文履歴の同期。
// 失敗してもlastSentOrderHistoryを進めないので、次回起動で再送される。
type HistorySync struct {
	kv        repo.KVStore
	deliverer HistoryDeliverer
	log       *zap.Logger
}

// DI
func NewHistorySync(kv repo.KVStore, deliverer HistoryDeliverer, log *zap.Logger) *HistorySync {
	if log == nil {
		log = zap.NewNop()
	}
	return &HistorySync{kv: kv, deliverer: deliverer, log: log}
}

// 非同期で実行し、結果をチャネルで返す
func (h *HistorySync) Start(ctx context.Context) <-chan SyncResult {
	out := make(chan SyncResult, 1)
	go func() {
		defer close(out)
		out <- h.Run(ctx)
	}()
	return out
}

func (h *HistorySync) Run(ctx context.Context) SyncResult {
	data, err := h.kv.Get(ctx, repo.KeyOrderHistory)
	if errors.Is(err, repo.ErrNotFound) {
		h.log.Info("no order history in storage", zap.String("key", repo.KeyOrderHistory))
		return SyncResult{State: SyncNoData}
	}
	if err != nil {
		h.log.Error("read order history", zap.Error(err))
		return SyncResult{State: SyncFailed, Err: err}
	}

	lastSent, err := h.kv.Get(ctx, repo.KeyLastSentHistory)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		h.log.Error("read last sent order history", zap.Error(err))
		return SyncResult{State: SyncFailed, Payload: data, Err: err}
	}
	if err == nil && lastSent == data {
		h.log.Info("no changes detected in order history, skipping sync")
		return SyncResult{State: SyncUnchanged, Payload: data}
	}

	h.log.Debug("sending order history", zap.String("state", string(SyncSending)), zap.Int("bytes", len(data)))
	if err := h.deliverer.Deliver(ctx, repo.KeyOrderHistory, data); err != nil {
		h.log.Error("order history sync failed", zap.Error(err))
		return SyncResult{State: SyncFailed, Payload: data, Err: err}
	}

	if err := h.kv.Set(ctx, repo.KeyLastSentHistory, data); err != nil {
		h.log.Error("save last sent order history", zap.Error(err))
		return SyncResult{State: SyncFailed, Payload: data, Err: err}
	}

	h.log.Info("order history synced", zap.Int("bytes", len(data)))
	return SyncResult{State: SyncSent, Payload: data}
}
