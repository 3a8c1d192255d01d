package api

import (
	"context"
	"fmt"
	"net/url"

	"app/internal/domain/model"
)

type MenuItemsService struct {
	c *Client
}

func NewMenuItemsService(c *Client) *MenuItemsService {
	return &MenuItemsService{c: c}
}

// 作成・更新の共通入力。dateは正午付きで送る（dateutil.NormalizeNoon）。
type MenuItemInput struct {
	ItemName    string `json:"itemName"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	VendorID    int64  `json:"vendorId"`
	Stock       *int64 `json:"stock,omitempty"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
	Date        string `json:"date,omitempty"`
}

func (s *MenuItemsService) List(ctx context.Context) ([]model.MenuItem, error) {
	return s.list(ctx, "/menu-items")
}

func (s *MenuItemsService) GetByID(ctx context.Context, id int64) (model.MenuItem, error) {
	var out model.MenuItem
	if err := s.c.get(ctx, fmt.Sprintf("/menu-items/%d", id), nil, &out); err != nil {
		return model.MenuItem{}, err
	}
	return out, nil
}

func (s *MenuItemsService) GetToday(ctx context.Context) ([]model.MenuItem, error) {
	return s.list(ctx, "/menu-items/today")
}

func (s *MenuItemsService) GetByVendorToday(ctx context.Context, vendorID int64) ([]model.MenuItem, error) {
	return s.list(ctx, fmt.Sprintf("/menu-items/vendor/%d/today", vendorID))
}

func (s *MenuItemsService) GetByDate(ctx context.Context, date string) ([]model.MenuItem, error) {
	return s.list(ctx, "/menu-items/date/"+url.PathEscape(date))
}

func (s *MenuItemsService) GetByVendorAndDate(ctx context.Context, vendorID int64, date string) ([]model.MenuItem, error) {
	return s.list(ctx, fmt.Sprintf("/menu-items/vendor/%d/date/%s", vendorID, url.PathEscape(date)))
}

func (s *MenuItemsService) GetByWeek(ctx context.Context, weekStart string) ([]model.MenuItem, error) {
	return s.list(ctx, "/menu-items/week/"+url.PathEscape(weekStart))
}

func (s *MenuItemsService) GetByVendorAndWeek(ctx context.Context, vendorID int64, weekStart string) ([]model.MenuItem, error) {
	return s.list(ctx, fmt.Sprintf("/menu-items/vendor/%d/week/%s", vendorID, url.PathEscape(weekStart)))
}

func (s *MenuItemsService) GetAllByVendor(ctx context.Context, vendorID int64) ([]model.MenuItem, error) {
	return s.list(ctx, fmt.Sprintf("/menu-items/vendor/%d/all", vendorID))
}

func (s *MenuItemsService) Create(ctx context.Context, in MenuItemInput) (model.MenuItem, error) {
	var out model.MenuItem
	if err := s.c.post(ctx, "/menu-items", nil, in, &out); err != nil {
		return model.MenuItem{}, err
	}
	return out, nil
}

func (s *MenuItemsService) Update(ctx context.Context, id int64, in MenuItemInput) (model.MenuItem, error) {
	var out model.MenuItem
	if err := s.c.put(ctx, fmt.Sprintf("/menu-items/%d", id), in, &out); err != nil {
		return model.MenuItem{}, err
	}
	return out, nil
}

// Delete は常設メニューを丸ごと消す。日付付きはDeleteAvailabilityを使う。
func (s *MenuItemsService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/menu-items/%d", id), nil, nil)
}

// DeleteAvailability は指定日の提供枠だけを消す。
func (s *MenuItemsService) DeleteAvailability(ctx context.Context, id int64, date string) error {
	q := url.Values{}
	q.Set("date", date)
	return s.c.delete(ctx, fmt.Sprintf("/menu-items/%d/availability", id), q, nil)
}

func (s *MenuItemsService) list(ctx context.Context, path string) ([]model.MenuItem, error) {
	var out []model.MenuItem
	if err := s.c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
