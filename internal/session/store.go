// Package session は認証済みセッションの唯一の持ち主。
// 永続化はKeyValueRepository経由、メモリ上の現在値はこのストアだけが書く。
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// 現在時刻の約束（テストで差し替える）
type Clock interface {
	Now() time.Time
}

type Store struct {
	kv      repository.KeyValueRepository
	clock   Clock
	timeout time.Duration // Hydrateの待ち上限
	logger  *slog.Logger

	mu      sync.RWMutex
	current *model.Session
}

func NewStore(kv repository.KeyValueRepository, clock Clock, timeout time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, clock: clock, timeout: timeout, logger: logger}
}

// Hydrate は起動時に保存済みセッションを復元する。
// 保存の読み出しがタイムアウトした場合や保存内容が壊れている場合は
// ログアウト状態で起動する（UIを無限ロードにしない）。
func (s *Store) Hydrate(ctx context.Context) {
	hctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	token, tokenOK, err := s.kv.Get(hctx, repository.KeyToken)
	if err != nil {
		s.logger.Warn("session hydrate: token read failed", "err", err)
		s.setCurrent(nil)
		return
	}

	userJSON, userOK, err := s.kv.Get(hctx, repository.KeyUser)
	if err != nil {
		s.logger.Warn("session hydrate: user read failed", "err", err)
		s.setCurrent(nil)
		return
	}

	if !tokenOK || !userOK {
		s.setCurrent(nil)
		return
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(userJSON), &sess); err != nil || !sess.Valid() || sess.Token != token {
		// 片方だけ残った保存は信用しない
		s.clearStorage(hctx)
		s.setCurrent(nil)
		return
	}

	if s.tokenExpired(token) {
		s.clearStorage(hctx)
		s.setCurrent(nil)
		return
	}

	s.setCurrent(&sess)
}

// Establish はログイン/登録成功時の保存。保存に失敗したら
// メモリにも載せない（次回起動とズレるため）。
func (s *Store) Establish(ctx context.Context, sess model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, repository.KeyToken, sess.Token); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, repository.KeyUser, string(raw)); err != nil {
		return err
	}
	s.setCurrent(&sess)
	return nil
}

// Clear はログアウト。保存の削除に失敗してもメモリは必ず消す。
func (s *Store) Clear(ctx context.Context) {
	s.clearStorage(ctx)
	s.setCurrent(nil)
}

// Current は現在のセッションのコピーを返す。
func (s *Store) Current() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.Session{}, false
	}
	return *s.current, true
}

// api.TokenSource
func (s *Store) Token(ctx context.Context) (string, bool) {
	sess, ok := s.Current()
	if !ok {
		return "", false
	}
	return sess.Token, true
}

// api.UnauthorizedHandler
// 401を受けたら保存済みのtokenとuserを消す。
func (s *Store) OnUnauthorized(ctx context.Context) {
	s.Clear(ctx)
}

func (s *Store) clearStorage(ctx context.Context) {
	if err := s.kv.Delete(ctx, repository.KeyToken, repository.KeyUser); err != nil {
		s.logger.Warn("session clear: storage delete failed", "err", err)
	}
}

func (s *Store) setCurrent(sess *model.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}

// tokenExpired は保存トークンのexpだけを見る。署名検証はサーバーの仕事。
// JWTとして読めないトークンは不透明なものとしてそのまま使う。
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(s.clock.Now())
}
