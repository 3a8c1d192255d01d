package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type kvGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてストアに注入します。
func NewKVGormRepository(db *gorm.DB) domainrepo.KeyValueRepository {
	return &kvGormRepository{db: db}
}

// keyで1件取得。無ければ (_, false, nil)。
func (r *kvGormRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var e model.StorageEntry

	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&e).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return e.Value, true, nil
}

// 主キーupsert
func (r *kvGormRepository) Set(ctx context.Context, key string, value string) error {
	entry := model.StorageEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).Save(&entry).Error
}

// 指定キーをまとめて削除。存在しないキーはエラーにしない。
func (r *kvGormRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("key IN ?", keys).
		Delete(&model.StorageEntry{}).Error
}
