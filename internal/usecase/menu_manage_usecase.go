package usecase

import (
	"context"
	"errors"

	"app/internal/api"
	"app/internal/dateutil"
	"app/internal/domain/model"
	"app/internal/validator"
)

// 過去日の提供枠は作らせない
var ErrDateInPast = errors.New("date is in the past")

// メニュー管理APIの約束
type MenuWriter interface {
	GetAllByVendor(ctx context.Context, vendorID int64) ([]model.MenuItem, error)
	Create(ctx context.Context, in api.MenuItemInput) (model.MenuItem, error)
	Update(ctx context.Context, id int64, in api.MenuItemInput) (model.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	DeleteAvailability(ctx context.Context, id int64, date string) error
}

// MenuManageUsecase は売店のメニュー管理。
type MenuManageUsecase struct {
	menus MenuWriter
	clock Clock
}

func NewMenuManageUsecase(menus MenuWriter, clock Clock) *MenuManageUsecase {
	return &MenuManageUsecase{menus: menus, clock: clock}
}

type SaveMenuItemInput struct {
	ID          int64 // 0なら新規作成
	ItemName    string
	Description string
	Price       string
	VendorID    int64
	Stock       int64
	IsAvailable bool
	Date        string // YYYY-MM-DD、空なら常設
}

// List は売店の全メニュー（日付付き提供枠に展開済み）。
func (u *MenuManageUsecase) List(ctx context.Context, vendorID int64) ([]model.MenuItem, error) {
	items, err := u.menus.GetAllByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	items = Normalize(items)
	SortByDate(items)
	return items, nil
}

// Save は作成または更新。日付は正午付きに直して送る
// （0時のまま送るとUTC変換で前日にずれるため）。
func (u *MenuManageUsecase) Save(ctx context.Context, in SaveMenuItemInput) (model.MenuItem, error) {
	if err := validator.ValidateMenuItem(in.ItemName, in.Price, in.Stock, in.Date); err != nil {
		return model.MenuItem{}, err
	}

	if in.Date != "" && in.Date < dateutil.Today(u.clock.Now()) {
		return model.MenuItem{}, ErrDateInPast
	}

	stock := in.Stock
	available := in.IsAvailable
	body := api.MenuItemInput{
		ItemName:    in.ItemName,
		Description: in.Description,
		Price:       in.Price,
		VendorID:    in.VendorID,
		Stock:       &stock,
		IsAvailable: &available,
	}
	if in.Date != "" {
		body.Date = dateutil.NormalizeNoon(in.Date)
	}

	if in.ID == 0 {
		return u.menus.Create(ctx, body)
	}
	return u.menus.Update(ctx, in.ID, body)
}

// Delete は日付付きならその日の提供枠だけ、常設なら項目ごと消す。
func (u *MenuManageUsecase) Delete(ctx context.Context, item model.MenuItem) error {
	if item.Date != "" {
		return u.menus.DeleteAvailability(ctx, item.ID, dateutil.DatePrefix(item.Date))
	}
	return u.menus.Delete(ctx, item.ID)
}
