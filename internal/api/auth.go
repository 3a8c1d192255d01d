package api

import (
	"context"

	"app/internal/domain/model"
)

type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ログイン。成功時のレスポンスはそのままセッションになる。
func (s *AuthService) Login(ctx context.Context, in LoginRequest) (model.Session, error) {
	var out model.Session
	if err := s.c.post(ctx, "/auth/login", nil, in, &out); err != nil {
		return model.Session{}, err
	}
	return out, nil
}

// 新規登録。登録と同時にログイン状態になる。
func (s *AuthService) Register(ctx context.Context, in RegisterRequest) (model.Session, error) {
	var out model.Session
	if err := s.c.post(ctx, "/auth/register", nil, in, &out); err != nil {
		return model.Session{}, err
	}
	return out, nil
}
