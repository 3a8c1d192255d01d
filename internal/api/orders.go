package api

import (
	"context"
	"fmt"

	"app/internal/domain/model"
)

type OrdersService struct {
	c *Client
}

func NewOrdersService(c *Client) *OrdersService {
	return &OrdersService{c: c}
}

type CreateOrderInput struct {
	UserID        int64             `json:"userId"`
	VendorID      int64             `json:"vendorId"`
	PaymentMethod string            `json:"paymentMethod"`
	Items         []model.OrderItem `json:"items"`
	Date          string            `json:"date,omitempty"` // YYYY-MM-DD
}

func (s *OrdersService) GetByID(ctx context.Context, id int64) (model.Order, error) {
	var out model.Order
	if err := s.c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (s *OrdersService) GetByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var out []model.Order
	if err := s.c.get(ctx, fmt.Sprintf("/orders/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrdersService) GetByVendorID(ctx context.Context, vendorID int64) ([]model.Order, error) {
	var out []model.Order
	if err := s.c.get(ctx, fmt.Sprintf("/orders/vendor/%d", vendorID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// 注文はPENDIENTE_PAGOで作られる
func (s *OrdersService) Create(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	var out model.Order
	if err := s.c.post(ctx, "/orders", nil, in, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// VENDOR: PAGADO → LISTO_PARA_RECOJO
func (s *OrdersService) MarkReady(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	if err := s.c.post(ctx, fmt.Sprintf("/orders/%d/ready", orderID), nil, nil, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// VENDOR: LISTO_PARA_RECOJO → COMPLETADO
func (s *OrdersService) MarkCompleted(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	if err := s.c.post(ctx, fmt.Sprintf("/orders/%d/complete", orderID), nil, nil, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// ユーザー: PENDIENTE_PAGOのみキャンセル可
func (s *OrdersService) Cancel(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	if err := s.c.delete(ctx, fmt.Sprintf("/orders/%d", orderID), nil, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}
