package repository

import (
	"context"
	"time"

	"foodcart/internal/domain/model"
	repo "foodcart/internal/repository"

	"gorm.io/gorm"
)

type recordGormRepository struct {
	db *gorm.DB
}

func NewRecordGormRepository(db *gorm.DB) repo.RecordRepository {
	return &recordGormRepository{db: db}
}

func (r *recordGormRepository) Create(ctx context.Context, rec model.StoredRecord) (model.StoredRecord, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.StoredRecord{}, err
	}
	return rec, nil
}

func (r *recordGormRepository) List(ctx context.Context) ([]model.StoredRecord, error) {
	var recs []model.StoredRecord

	//登録順
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
