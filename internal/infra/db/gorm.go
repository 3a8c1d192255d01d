package db

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Connect はローカル保存用のsqliteを開いて *gorm.DB を返す。
// pathが空ならホーム配下のデフォルトに置く。
func Connect(path string) (*gorm.DB, error) {
	if path == "" {
		path = defaultPath()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cafeteria.db"
	}
	return filepath.Join(home, ".cafeteria", "cafeteria.db")
}
