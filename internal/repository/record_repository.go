package repository

import (
	"context"

	"foodcart/internal/domain/model"
)

// collectorの受信記録の保存・一覧取得の約束。
type RecordRepository interface {
	//1件追記
	Create(ctx context.Context, rec model.StoredRecord) (model.StoredRecord, error)

	//登録順に全件
	List(ctx context.Context) ([]model.StoredRecord, error)
}
