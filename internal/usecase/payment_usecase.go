package usecase

import (
	"context"

	"app/internal/api"
	"app/internal/validator"
)

// 決済APIの約束
type PaymentsAPI interface {
	GenerateToken(ctx context.Context, phoneNumber string, otp string) (string, error)
	CreatePayment(ctx context.Context, orderID int64, token string, payerEmail string) (api.PaymentResponse, error)
}

// PaymentUsecase はYape決済の2段階（トークン発行→支払い作成）をまとめる。
// 実際の決済処理は外部ゲートウェイの仕事。
type PaymentUsecase struct {
	payments PaymentsAPI
}

func NewPaymentUsecase(payments PaymentsAPI) *PaymentUsecase {
	return &PaymentUsecase{payments: payments}
}

type PayInput struct {
	OrderID     int64
	PhoneNumber string
	OTP         string
	PayerEmail  string
}

func (u *PaymentUsecase) Pay(ctx context.Context, in PayInput) (api.PaymentResponse, error) {
	phone, err := validator.NormalizePhone(in.PhoneNumber)
	if err != nil {
		return api.PaymentResponse{}, err
	}
	otp, err := validator.NormalizeOTP(in.OTP)
	if err != nil {
		return api.PaymentResponse{}, err
	}

	token, err := u.payments.GenerateToken(ctx, phone, otp)
	if err != nil {
		return api.PaymentResponse{}, err
	}

	return u.payments.CreatePayment(ctx, in.OrderID, token, in.PayerEmail)
}
