package api

import (
	"context"

	"app/internal/domain/model"
)

type DashboardService struct {
	c *Client
}

func NewDashboardService(c *Client) *DashboardService {
	return &DashboardService{c: c}
}

func (s *DashboardService) GetStats(ctx context.Context) (model.DashboardStats, error) {
	var out model.DashboardStats
	if err := s.c.get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return model.DashboardStats{}, err
	}
	return out, nil
}
