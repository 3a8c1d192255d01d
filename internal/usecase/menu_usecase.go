package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"app/internal/dateutil"
	"app/internal/domain/model"
)

type MenuFilter string

const (
	FilterToday MenuFilter = "today"
	FilterWeek  MenuFilter = "week"
	FilterDate  MenuFilter = "date"
	FilterAll   MenuFilter = "all"
)

var ErrInvalidFilter = errors.New("invalid filter")

// メニュー取得APIの約束
type MenuLister interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (model.MenuItem, error)
	GetToday(ctx context.Context) ([]model.MenuItem, error)
	GetByDate(ctx context.Context, date string) ([]model.MenuItem, error)
	GetByWeek(ctx context.Context, weekStart string) ([]model.MenuItem, error)
	GetAllByVendor(ctx context.Context, vendorID int64) ([]model.MenuItem, error)
	GetByVendorToday(ctx context.Context, vendorID int64) ([]model.MenuItem, error)
	GetByVendorAndDate(ctx context.Context, vendorID int64, date string) ([]model.MenuItem, error)
	GetByVendorAndWeek(ctx context.Context, vendorID int64, weekStart string) ([]model.MenuItem, error)
}

// MenuUsecase は閲覧画面のメニュー取得＋クライアント側の絞り込み。
type MenuUsecase struct {
	menus MenuLister
	clock Clock
}

func NewMenuUsecase(menus MenuLister, clock Clock) *MenuUsecase {
	return &MenuUsecase{menus: menus, clock: clock}
}

type BrowseInput struct {
	VendorID int64      // 0なら全売店
	Filter   MenuFilter // today / week / date / all
	Date     string     // Filter=dateのとき必須
	Search   string     // 任意の部分一致
}

// Browse はフィルタに応じたエンドポイントで取得し、
// サーバーの緩い応答に対してクライアント側でも同じ条件で絞り直す。
func (u *MenuUsecase) Browse(ctx context.Context, in BrowseInput) ([]model.MenuItem, error) {
	if in.Filter == "" {
		in.Filter = FilterToday
	}

	now := u.clock.Now()
	items, err := u.fetch(ctx, in, now)
	if err != nil {
		return nil, err
	}

	items = Normalize(items)
	items = FilterForward(items, in.Filter, in.Date, now)
	SortByDate(items)

	if s := strings.TrimSpace(in.Search); s != "" {
		items = SearchMenu(items, s)
	}

	return items, nil
}

// GetItem は単品取得（カート追加前の在庫確認に使う）。
func (u *MenuUsecase) GetItem(ctx context.Context, id int64) (model.MenuItem, error) {
	return u.menus.GetByID(ctx, id)
}

func (u *MenuUsecase) fetch(ctx context.Context, in BrowseInput, now time.Time) ([]model.MenuItem, error) {
	switch in.Filter {
	case FilterToday:
		if in.VendorID != 0 {
			return u.menus.GetByVendorToday(ctx, in.VendorID)
		}
		return u.menus.GetToday(ctx)
	case FilterWeek:
		weekStart := dateutil.WeekStart(now)
		if in.VendorID != 0 {
			return u.menus.GetByVendorAndWeek(ctx, in.VendorID, weekStart)
		}
		return u.menus.GetByWeek(ctx, weekStart)
	case FilterDate:
		if !dateutil.ValidDate(in.Date) {
			return nil, ErrInvalidFilter
		}
		if in.VendorID != 0 {
			return u.menus.GetByVendorAndDate(ctx, in.VendorID, in.Date)
		}
		return u.menus.GetByDate(ctx, in.Date)
	case FilterAll:
		if in.VendorID != 0 {
			return u.menus.GetAllByVendor(ctx, in.VendorID)
		}
		return u.menus.List(ctx)
	default:
		return nil, ErrInvalidFilter
	}
}

// Normalize はavailabilitiesを持つ項目を日付ごとの行に展開する。
func Normalize(items []model.MenuItem) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if it.Date != "" || len(it.Availabilities) == 0 {
			out = append(out, it)
			continue
		}
		for _, a := range it.Availabilities {
			expanded := it
			expanded.Date = a.Date
			expanded.IsAvailable = a.IsAvailable
			expanded.Stock = a.Stock
			expanded.Availabilities = nil
			out = append(out, expanded)
		}
	}
	return out
}

// FilterForward はこれから提供されるメニュー向けの絞り込み。
//   - 非公開と在庫0は常に除外（在庫不明は通す）
//   - 日付なし（常設）は日付条件を素通り
//   - date指定は日付部分の一致
//   - それ以外は当日より前を捨て、weekは今週の日曜まで
//
// 「今週」の下限が月曜ではなく当日なのは閲覧画面の仕様。
// 履歴側（FilterHistory）とは意図的に揃えていない。
func FilterForward(items []model.MenuItem, filter MenuFilter, selectedDate string, now time.Time) []model.MenuItem {
	today := dateutil.Today(now)
	sunday := dateutil.NextSunday(now)

	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if !it.Orderable() {
			continue
		}
		if it.Date == "" {
			out = append(out, it)
			continue
		}

		d := dateutil.DatePrefix(it.Date)
		switch filter {
		case FilterDate:
			if !dateutil.MatchesExactDate(d, selectedDate) {
				continue
			}
		case FilterAll:
			// 日付では絞らない
		default:
			if d < today {
				continue
			}
			if filter == FilterWeek && d > sunday {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// SortByDate は日付昇順、日付なしを先頭に置く。
func SortByDate(items []model.MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a := dateutil.DatePrefix(items[i].Date)
		b := dateutil.DatePrefix(items[j].Date)
		if a == b {
			return false
		}
		if a == "" {
			return true
		}
		if b == "" {
			return false
		}
		return a < b
	})
}

// SearchMenu は名前・説明・価格・売店名の部分一致（大文字小文字無視）。
func SearchMenu(items []model.MenuItem, query string) []model.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.ItemName), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Price), q) ||
			strings.Contains(strings.ToLower(it.VendorName), q) {
			out = append(out, it)
		}
	}
	return out
}
