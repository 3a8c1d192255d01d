package validator

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"app/internal/dateutil"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// 電話番号の桁数が不正（9〜15桁）
	ErrInvalidPhone = errors.New("invalid phone number")

	// OTPは6桁
	ErrInvalidOTP = errors.New("invalid otp")
)

// ログインの入力を検証
func ValidateLogin(email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidInput
	}

	return nil
}

// 新規登録の入力を検証
func ValidateRegister(firstName string, lastName string, email string, password string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return ErrInvalidInput
	}
	if err := ValidateLogin(email, password); err != nil {
		return err
	}

	// パスワード最低文字数（MVP: 8）
	if len(password) < 8 {
		return ErrInvalidInput
	}

	return nil
}

// NormalizePhone は数字以外を落として桁数を検証する。
func NormalizePhone(phone string) (string, error) {
	digits := digitsOnly(phone)
	if len(digits) < 9 || len(digits) > 15 {
		return "", ErrInvalidPhone
	}
	return digits, nil
}

// NormalizeOTP は数字以外を落として6桁を要求する。
func NormalizeOTP(otp string) (string, error) {
	digits := digitsOnly(otp)
	if len(digits) != 6 {
		return "", ErrInvalidOTP
	}
	return digits, nil
}

// メニュー項目の入力を検証。日付は任意だが、入れるならYYYY-MM-DD。
func ValidateMenuItem(itemName string, price string, stock int64, date string) error {
	if strings.TrimSpace(itemName) == "" {
		return ErrInvalidInput
	}

	p, err := strconv.ParseFloat(price, 64)
	if err != nil || p <= 0 {
		return ErrInvalidInput
	}

	if stock < 0 {
		return ErrInvalidInput
	}

	if date != "" && !dateutil.ValidDate(date) {
		return ErrInvalidInput
	}

	return nil
}

// 売店の入力を検証。営業時間はHH:mm（任意）。
func ValidateVendor(name string, openingTime string, closingTime string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidInput
	}
	if openingTime != "" && !isHHMM(openingTime) {
		return ErrInvalidInput
	}
	if closingTime != "" && !isHHMM(closingTime) {
		return ErrInvalidInput
	}
	return nil
}

// 評価は1〜5
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	return nil
}

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func isHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
