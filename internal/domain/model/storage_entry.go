package model

import "time"

// ローカル保存の1エントリ（token / user / theme）。
// 値は不透明な文字列として扱う。
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
