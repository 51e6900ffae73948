package repository

import "context"

// 永続キーバリューのキー
const (
	KeyCart            = "cart"
	KeyOrderHistory    = "orderHistory"
	KeyLastSentHistory = "lastSentOrderHistory"
)

// ブラウザのlocalStorage相当の約束。
// 値は文字列のみ。無いキーは ErrNotFound。
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	// 既存の値は上書き
	Set(ctx context.Context, key string, value string) error
	// 無いキーでもエラーにしない
	Remove(ctx context.Context, key string) error
}
