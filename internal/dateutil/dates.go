// Package dateutil はローカル時刻ベースの日付文字列計算をまとめる。
// バックエンドとの日付のやり取りはYYYY-MM-DD文字列で行い、
// タイムゾーン起因の1日ズレを避けるためtime.Parseでの比較はしない。
package dateutil

import "time"

const layoutDate = "2006-01-02"

// DateString はローカル日付をYYYY-MM-DDにする。
func DateString(t time.Time) string {
	return t.Format(layoutDate)
}

// Today は当日のYYYY-MM-DD。
func Today(now time.Time) string {
	return DateString(now)
}

// WeekStart は直近の月曜（日曜なら前の月曜）。
func WeekStart(now time.Time) string {
	day := int(now.Weekday()) // 0=日曜
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	return DateString(now.AddDate(0, 0, diff))
}

// NextSunday は今週の日曜（当日が日曜ならその日）。
func NextSunday(now time.Time) string {
	day := int(now.Weekday())
	diff := 0
	if day != 0 {
		diff = 7 - day
	}
	return DateString(now.AddDate(0, 0, diff))
}

// SundayWeekStart は日曜起点の週初め。履歴系のフィルタで使う。
func SundayWeekStart(now time.Time) string {
	return DateString(now.AddDate(0, 0, -int(now.Weekday())))
}

// MonthStart は当月1日。
func MonthStart(now time.Time) string {
	return DateString(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
}

// DatePrefix はISOタイムスタンプからYYYY-MM-DD部分を取り出す。
func DatePrefix(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == 'T' || s[i] == ' ' {
			return s[:i]
		}
	}
	return s
}

// MatchesExactDate は日付部分の文字列一致。
// タイムゾーン依存のDateパースを意図的に避けている。
func MatchesExactDate(dateStr string, targetDate string) bool {
	if dateStr == "" || targetDate == "" {
		return false
	}
	return DatePrefix(dateStr) == DatePrefix(targetDate)
}

// IsToday は日付部分が当日と一致するか。
func IsToday(dateStr string, now time.Time) bool {
	return MatchesExactDate(dateStr, Today(now))
}

// NormalizeNoon は日付に正午を付けて送る形にする。
// 0時で送るとUTC変換で前日にずれるため。
func NormalizeNoon(dateStr string) string {
	d := DatePrefix(dateStr)
	if d == "" {
		return ""
	}
	return d + "T12:00:00"
}

// ValidDate はYYYY-MM-DDとして成立しているか。
func ValidDate(dateStr string) bool {
	_, err := time.Parse(layoutDate, dateStr)
	return err == nil
}
