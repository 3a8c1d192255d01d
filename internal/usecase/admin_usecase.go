package usecase

import (
	"context"
	"errors"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/validator"
)

// VENDORロールには所属売店が必須
var ErrVendorIDRequired = errors.New("vendor id required for vendor role")

// ユーザー管理APIの約束
type UsersAPI interface {
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id int64, role model.Role, vendorID *int64) (model.User, error)
}

// 売店管理APIの約束
type VendorsAPI interface {
	List(ctx context.Context) ([]model.Vendor, error)
	Create(ctx context.Context, in api.VendorInput) (model.Vendor, error)
	Update(ctx context.Context, id int64, in api.VendorInput) (model.Vendor, error)
	Delete(ctx context.Context, id int64) error
}

// AdminUsecase はADMIN画面のユーザー・売店管理。
type AdminUsecase struct {
	users   UsersAPI
	vendors VendorsAPI
}

func NewAdminUsecase(users UsersAPI, vendors VendorsAPI) *AdminUsecase {
	return &AdminUsecase{users: users, vendors: vendors}
}

func (u *AdminUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// AssignRole はロール変更。VENDOR以外にはvendorIdをnullで送る。
func (u *AdminUsecase) AssignRole(ctx context.Context, userID int64, role model.Role, vendorID int64) (model.User, error) {
	role = model.ParseRole(string(role))

	var vid *int64
	if role == model.RoleVendor {
		if vendorID <= 0 {
			return model.User{}, ErrVendorIDRequired
		}
		vid = &vendorID
	}

	return u.users.UpdateRole(ctx, userID, role, vid)
}

func (u *AdminUsecase) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	return u.vendors.List(ctx)
}

func (u *AdminUsecase) CreateVendor(ctx context.Context, in api.VendorInput) (model.Vendor, error) {
	if err := validator.ValidateVendor(in.Name, in.OpeningTime, in.ClosingTime); err != nil {
		return model.Vendor{}, err
	}
	return u.vendors.Create(ctx, in)
}

func (u *AdminUsecase) UpdateVendor(ctx context.Context, id int64, in api.VendorInput) (model.Vendor, error) {
	if err := validator.ValidateVendor(in.Name, in.OpeningTime, in.ClosingTime); err != nil {
		return model.Vendor{}, err
	}
	return u.vendors.Update(ctx, id, in)
}

func (u *AdminUsecase) DeleteVendor(ctx context.Context, id int64) error {
	return u.vendors.Delete(ctx, id)
}
