package usecase

import "time"

// 現在時刻の約束。main.goで実物を注入する。
type Clock interface {
	Now() time.Time
}
