package model

type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// 保存値が壊れていたらlightに戻す
func ParseThemeMode(s string) (ThemeMode, bool) {
	switch ThemeMode(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return ThemeMode(s), true
	default:
		return ThemeLight, false
	}
}
