package api

import (
	"context"
	"fmt"

	"app/internal/domain/model"
)

type UsersService struct {
	c *Client
}

func NewUsersService(c *Client) *UsersService {
	return &UsersService{c: c}
}

func (s *UsersService) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := s.c.get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UsersService) GetByID(ctx context.Context, id int64) (model.User, error) {
	var out model.User
	if err := s.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// 自分自身
func (s *UsersService) Me(ctx context.Context) (model.User, error) {
	var out model.User
	if err := s.c.get(ctx, "/users/me", nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// vendorIdはVENDOR以外のロールではnullで送る
type updateRoleRequest struct {
	Role     model.Role `json:"role"`
	VendorID *int64     `json:"vendorId"`
}

func (s *UsersService) UpdateRole(ctx context.Context, id int64, role model.Role, vendorID *int64) (model.User, error) {
	var out model.User
	body := updateRoleRequest{Role: role, VendorID: vendorID}
	if err := s.c.put(ctx, fmt.Sprintf("/users/%d/role", id), body, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
