package model

import "time"

// 永続キーバリュー（cart / orderHistory / lastSentOrderHistory）の1行。
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (StorageEntry) TableName() string {
	return "local_storage"
}
