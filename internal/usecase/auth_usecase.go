package usecase

import (
	"context"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/session"
	"app/internal/validator"
)

// 認証APIの約束
type Authenticator interface {
	Login(ctx context.Context, in api.LoginRequest) (model.Session, error)
	Register(ctx context.Context, in api.RegisterRequest) (model.Session, error)
}

// AuthUsecase はログイン・登録・ログアウトの流れをまとめる。
// トークンそのものの発行・検証はサーバーの仕事。
type AuthUsecase struct {
	auth     Authenticator
	sessions *session.Store
}

func NewAuthUsecase(auth Authenticator, sessions *session.Store) *AuthUsecase {
	return &AuthUsecase{auth: auth, sessions: sessions}
}

func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (model.Session, error) {
	if err := validator.ValidateLogin(email, password); err != nil {
		return model.Session{}, err
	}

	sess, err := u.auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return model.Session{}, err
	}

	if err := u.sessions.Establish(ctx, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (u *AuthUsecase) Register(ctx context.Context, firstName, lastName, email, password string) (model.Session, error) {
	if err := validator.ValidateRegister(firstName, lastName, email, password); err != nil {
		return model.Session{}, err
	}

	sess, err := u.auth.Register(ctx, api.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return model.Session{}, err
	}

	if err := u.sessions.Establish(ctx, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

func (u *AuthUsecase) Logout(ctx context.Context) {
	u.sessions.Clear(ctx)
}
