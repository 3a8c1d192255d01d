package repository

import "context"

// 固定の保存キー。バックエンドのクライアントと互換の名前を使う。
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// ローカルの不透明なkey-value保存の約束。
// sessionストアとprefsストアだけが書き込む。
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
