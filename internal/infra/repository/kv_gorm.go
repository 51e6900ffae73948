package repository

import (
	"context"
	"errors"
	"time"

	"foodcart/internal/domain/model"
	repo "foodcart/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KVGormRepository struct {
	db *gorm.DB
}

// DI
func NewKVGormRepository(db *gorm.DB) *KVGormRepository {
	return &KVGormRepository{db: db}
}

// keyの値を取得
func (r *KVGormRepository) Get(ctx context.Context, key string) (string, error) {
	var entry model.StorageEntry

	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repo.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// keyの値を上書き（無ければ作成）
func (r *KVGormRepository) Set(ctx context.Context, key string, value string) error {
	entry := model.StorageEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// keyを削除（無くてもOK）
func (r *KVGormRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.StorageEntry{}).Error
}
