package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type PaymentsService struct {
	c *Client
}

func NewPaymentsService(c *Client) *PaymentsService {
	return &PaymentsService{c: c}
}

type PaymentRequest struct {
	Token      string `json:"token"`
	PayerEmail string `json:"payerEmail"`
}

type PaymentResponse struct {
	PreferenceID  string  `json:"preferenceId"`
	PaymentURL    string  `json:"paymentUrl"`
	QRCode        string  `json:"qrCode,omitempty"`
	Total         float64 `json:"total"`
	PaymentMethod string  `json:"paymentMethod"`
}

// GenerateToken は電話番号とOTPからゲートウェイのトークンを得る。
// レスポンスはJSON文字列か素のテキストのどちらでも来る。
func (s *PaymentsService) GenerateToken(ctx context.Context, phoneNumber string, otp string) (string, error) {
	q := url.Values{}
	q.Set("phoneNumber", phoneNumber)
	q.Set("otp", otp)

	raw, err := s.c.doRaw(ctx, http.MethodPost, "/payment/yape/token", q)
	if err != nil {
		return "", err
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return "", fmt.Errorf("empty payment token")
	}
	return token, nil
}

func (s *PaymentsService) CreatePayment(ctx context.Context, orderID int64, token string, payerEmail string) (PaymentResponse, error) {
	var out PaymentResponse
	body := PaymentRequest{Token: token, PayerEmail: payerEmail}
	if err := s.c.post(ctx, fmt.Sprintf("/payment/yape/%d", orderID), nil, body, &out); err != nil {
		return PaymentResponse{}, err
	}
	return out, nil
}
