package repository

import (
	"context"
	"testing"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestKV(t *testing.T) domainrepo.KeyValueRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&model.StorageEntry{}))
	return NewKVGormRepository(db)
}

func TestKVGorm_SetGetRoundTrip(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, domainrepo.KeyToken)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, kv.Set(ctx, domainrepo.KeyToken, "tok-abc"))
	v, ok, err := kv.Get(ctx, domainrepo.KeyToken)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-abc", v)
}

func TestKVGorm_SetOverwrites(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, domainrepo.KeyTheme, "light"))
	assert.NoError(t, kv.Set(ctx, domainrepo.KeyTheme, "dark"))

	v, ok, err := kv.Get(ctx, domainrepo.KeyTheme)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestKVGorm_DeleteMultipleKeys(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, domainrepo.KeyToken, "tok"))
	assert.NoError(t, kv.Set(ctx, domainrepo.KeyUser, `{"id":7}`))
	assert.NoError(t, kv.Set(ctx, domainrepo.KeyTheme, "dark"))

	assert.NoError(t, kv.Delete(ctx, domainrepo.KeyToken, domainrepo.KeyUser))

	_, ok, _ := kv.Get(ctx, domainrepo.KeyToken)
	assert.False(t, ok)
	_, ok, _ = kv.Get(ctx, domainrepo.KeyUser)
	assert.False(t, ok)
	_, ok, _ = kv.Get(ctx, domainrepo.KeyTheme)
	assert.True(t, ok)

	// 存在しないキーの削除はエラーにしない
	assert.NoError(t, kv.Delete(ctx, "nope"))
}
