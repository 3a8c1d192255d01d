package usecase

import (
	"context"
	"testing"

	"app/internal/api"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

type paymentsAPIMock struct {
	tokenPhone string
	tokenOTP   string
	paidOrder  int64
	paidToken  string
	paidEmail  string
}

func (m *paymentsAPIMock) GenerateToken(ctx context.Context, phoneNumber string, otp string) (string, error) {
	m.tokenPhone = phoneNumber
	m.tokenOTP = otp
	return "tok-123", nil
}

func (m *paymentsAPIMock) CreatePayment(ctx context.Context, orderID int64, token string, payerEmail string) (api.PaymentResponse, error) {
	m.paidOrder = orderID
	m.paidToken = token
	m.paidEmail = payerEmail
	return api.PaymentResponse{Total: 25.50, PaymentMethod: "YAPE"}, nil
}

func TestPay_NormalizesPhoneAndOTP(t *testing.T) {
	mock := &paymentsAPIMock{}
	u := NewPaymentUsecase(mock)

	resp, err := u.Pay(context.Background(), PayInput{
		OrderID:     9,
		PhoneNumber: "+51 987-654-321",
		OTP:         "12 34 56",
		PayerEmail:  "ana@uni.edu",
	})
	assert.NoError(t, err)
	assert.Equal(t, "51987654321", mock.tokenPhone)
	assert.Equal(t, "123456", mock.tokenOTP)
	assert.Equal(t, int64(9), mock.paidOrder)
	assert.Equal(t, "tok-123", mock.paidToken)
	assert.Equal(t, "ana@uni.edu", mock.paidEmail)
	assert.InDelta(t, 25.50, resp.Total, 0.001)
}

func TestPay_RejectsBadPhoneOrOTP(t *testing.T) {
	mock := &paymentsAPIMock{}
	u := NewPaymentUsecase(mock)
	ctx := context.Background()

	_, err := u.Pay(ctx, PayInput{OrderID: 9, PhoneNumber: "123", OTP: "123456"})
	assert.ErrorIs(t, err, validator.ErrInvalidPhone)

	_, err = u.Pay(ctx, PayInput{OrderID: 9, PhoneNumber: "987654321", OTP: "12345"})
	assert.ErrorIs(t, err, validator.ErrInvalidOTP)

	// 失敗時はトークン発行まで進まない
	assert.Equal(t, "", mock.tokenPhone)
	assert.Equal(t, int64(0), mock.paidOrder)
}
