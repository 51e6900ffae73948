package model

import "time"

// collectorが受け取った {key, value} の記録。
// 同じkeyでも追記で残す。
type StoredRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"type:varchar(255);not null;index" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (StoredRecord) TableName() string {
	return "storage"
}
