package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	APIBaseURL string // バックエンドのベースURL

	StoragePath string // ローカル保存のsqliteパス（空ならデフォルト）

	HTTPTimeout    time.Duration // 1リクエストのタイムアウト
	HydrateTimeout time.Duration // 起動時のセッション復元の待ち上限
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		StoragePath: os.Getenv("STORAGE_PATH"),

		HTTPTimeout:    secondsOr("HTTP_TIMEOUT_SEC", 15),
		HydrateTimeout: secondsOr("HYDRATE_TIMEOUT_SEC", 3),
	}

	//必須チェック
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}

	return cfg, nil
}

func secondsOr(key string, def int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(def) * time.Second
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return time.Duration(def) * time.Second
	}
	return time.Duration(i) * time.Second
}
