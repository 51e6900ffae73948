package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"foodcart/internal/domain/model"
	repo "foodcart/internal/repository"

	"go.uber.org/zap"
)

// collector（/saveData, /getData）の業務ロジック
type CollectorUsecase struct {
	records repo.RecordRepository
	log     *zap.Logger
}

func NewCollectorUsecase(records repo.RecordRepository, log *zap.Logger) *CollectorUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollectorUsecase{records: records, log: log}
}

// POST /saveData の入力
type SaveDataInput struct {
	Key   string
	Value json.RawMessage
}

// GET /getData の1件。valueはJSONとして返す。
type RecordOutput struct {
	ID    int64           `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// {key, value} を1件追記する。
// valueが文字列ならその中身を、それ以外はJSONのまま保存する。
func (u *CollectorUsecase) SaveData(ctx context.Context, in SaveDataInput) (model.StoredRecord, error) {
	key := strings.TrimSpace(in.Key)
	if key == "" || len(key) > 255 {
		return model.StoredRecord{}, NewHTTPError(http.StatusBadRequest, "invalid key")
	}

	raw := bytes.TrimSpace(in.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return model.StoredRecord{}, NewHTTPError(http.StatusBadRequest, "invalid value")
	}

	value := string(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		value = s
	}

	//保存前にJSONとして読めるか確認
	if !json.Valid([]byte(value)) {
		return model.StoredRecord{}, NewHTTPError(http.StatusBadRequest, "Invalid JSON data")
	}

	rec, err := u.records.Create(ctx, model.StoredRecord{Key: key, Value: value})
	if err != nil {
		u.log.Error("save data", zap.String("key", key), zap.Error(err))
		return model.StoredRecord{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Info("data saved", zap.Int64("id", rec.ID), zap.String("key", key))
	return rec, nil
}

// 全件を登録順に返す。JSONとして読めない行は飛ばす。
func (u *CollectorUsecase) GetData(ctx context.Context) ([]RecordOutput, error) {
	recs, err := u.records.List(ctx)
	if err != nil {
		u.log.Error("list data", zap.Error(err))
		return []RecordOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]RecordOutput, 0, len(recs))
	for _, r := range recs {
		if !json.Valid([]byte(r.Value)) {
			u.log.Warn("invalid json data in row, skipping", zap.Int64("id", r.ID))
			continue
		}
		out = append(out, RecordOutput{
			ID:    r.ID,
			Key:   r.Key,
			Value: json.RawMessage(r.Value),
		})
	}
	return out, nil
}
