// Package prefs はテーマ設定の唯一の持ち主。
package prefs

import (
	"context"
	"log/slog"
	"sync"

	"app/internal/domain/model"
	"app/internal/repository"
)

type Store struct {
	kv     repository.KeyValueRepository
	logger *slog.Logger

	mu   sync.RWMutex
	mode model.ThemeMode
}

func NewStore(kv repository.KeyValueRepository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger, mode: model.ThemeLight}
}

// Load は保存済みテーマを読む。壊れた値・読み出し失敗はlightに落とす。
func (s *Store) Load(ctx context.Context) {
	v, ok, err := s.kv.Get(ctx, repository.KeyTheme)
	if err != nil {
		s.logger.Warn("theme load failed", "err", err)
		return
	}
	if !ok {
		return
	}
	mode, valid := model.ParseThemeMode(v)
	if !valid {
		return
	}
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

func (s *Store) Mode() model.ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Set は即座にメモリへ反映し、保存失敗はログだけ残す。
func (s *Store) Set(ctx context.Context, mode model.ThemeMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	if err := s.kv.Set(ctx, repository.KeyTheme, string(mode)); err != nil {
		s.logger.Warn("theme persist failed", "err", err)
	}
}
