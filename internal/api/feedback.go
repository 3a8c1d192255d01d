package api

import (
	"context"
	"fmt"

	"app/internal/domain/model"
)

type FeedbackService struct {
	c *Client
}

func NewFeedbackService(c *Client) *FeedbackService {
	return &FeedbackService{c: c}
}

type CreateFeedbackInput struct {
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	UserID     int64  `json:"userId"`
	OrderID    int64  `json:"orderId"`
	MenuItemID int64  `json:"menuItemId"`
}

func (s *FeedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	return s.list(ctx, "/feedback")
}

func (s *FeedbackService) GetByMenuItem(ctx context.Context, menuItemID int64) ([]model.Feedback, error) {
	return s.list(ctx, fmt.Sprintf("/feedback/item/%d", menuItemID))
}

func (s *FeedbackService) GetByUser(ctx context.Context, userID int64) ([]model.Feedback, error) {
	return s.list(ctx, fmt.Sprintf("/feedback/user/%d", userID))
}

func (s *FeedbackService) GetByVendor(ctx context.Context, vendorID int64) ([]model.Feedback, error) {
	return s.list(ctx, fmt.Sprintf("/feedback/vendor/%d", vendorID))
}

// 1注文1件の制約はサーバー側。クライアントは重複をヒントで防ぐだけ。
func (s *FeedbackService) Create(ctx context.Context, in CreateFeedbackInput) (model.Feedback, error) {
	var out model.Feedback
	if err := s.c.post(ctx, "/feedback", nil, in, &out); err != nil {
		return model.Feedback{}, err
	}
	return out, nil
}

func (s *FeedbackService) list(ctx context.Context, path string) ([]model.Feedback, error) {
	var out []model.Feedback
	if err := s.c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
