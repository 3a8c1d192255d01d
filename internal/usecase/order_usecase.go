package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/dateutil"
	"app/internal/domain/model"
)

type HistoryRange string

const (
	RangeAll   HistoryRange = "all"
	RangeToday HistoryRange = "today"
	RangeWeek  HistoryRange = "week"
	RangeMonth HistoryRange = "month"
)

var (
	// 現在の状態から許されない操作
	ErrIllegalTransition = errors.New("illegal order transition")
)

// 注文APIの約束
type OrdersAPI interface {
	GetByID(ctx context.Context, id int64) (model.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	GetByVendorID(ctx context.Context, vendorID int64) ([]model.Order, error)
	MarkReady(ctx context.Context, orderID int64) (model.Order, error)
	MarkCompleted(ctx context.Context, orderID int64) (model.Order, error)
	Cancel(ctx context.Context, orderID int64) (model.Order, error)
}

// OrderUsecase は注文一覧の絞り込みとクライアント発の状態操作。
type OrderUsecase struct {
	orders OrdersAPI
	clock  Clock
}

func NewOrderUsecase(orders OrdersAPI, clock Clock) *OrderUsecase {
	return &OrderUsecase{orders: orders, clock: clock}
}

type HistoryInput struct {
	Range  HistoryRange // 期間。空ならall
	Status model.OrderStatus // 空なら全状態
}

// ListForUser はユーザー自身の注文を取得して絞り込む。
func (u *OrderUsecase) ListForUser(ctx context.Context, userID int64, in HistoryInput) ([]model.Order, error) {
	orders, err := u.orders.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FilterHistory(orders, in, u.clock.Now()), nil
}

// ListForVendor は売店側の受注一覧。
func (u *OrderUsecase) ListForVendor(ctx context.Context, vendorID int64, in HistoryInput) ([]model.Order, error) {
	orders, err := u.orders.GetByVendorID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return FilterHistory(orders, in, u.clock.Now()), nil
}

// FilterHistory は履歴向けの絞り込み。
// 週の境界は月曜〜日曜の文字どおりの週で、閲覧側（FilterForward）の
// 「当日から日曜まで」とは意図的に別物。
func FilterHistory(orders []model.Order, in HistoryInput, now time.Time) []model.Order {
	var lower, upper string
	switch in.Range {
	case RangeToday:
		lower = dateutil.Today(now)
	case RangeWeek:
		lower = dateutil.WeekStart(now)
		upper = dateutil.NextSunday(now)
	case RangeMonth:
		lower = dateutil.MonthStart(now)
	}

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if in.Status != "" && o.Status != in.Status {
			continue
		}
		if lower != "" {
			d := dateutil.DatePrefix(o.CreatedAt)
			if d == "" || d < lower {
				continue
			}
			if upper != "" && d > upper {
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

// Get は単品取得。
func (u *OrderUsecase) Get(ctx context.Context, orderID int64) (model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// Cancel はPENDIENTE_PAGOの注文だけ取り消せる。
func (u *OrderUsecase) Cancel(ctx context.Context, order model.Order) (model.Order, error) {
	if !order.CanCancel() {
		return model.Order{}, ErrIllegalTransition
	}
	return u.orders.Cancel(ctx, order.ID)
}

// MarkReady はVENDOR操作。PAGADO → LISTO_PARA_RECOJO。
func (u *OrderUsecase) MarkReady(ctx context.Context, order model.Order) (model.Order, error) {
	if !order.CanMarkReady() {
		return model.Order{}, ErrIllegalTransition
	}
	return u.orders.MarkReady(ctx, order.ID)
}

// MarkCompleted はVENDOR操作。LISTO_PARA_RECOJO → COMPLETADO。
func (u *OrderUsecase) MarkCompleted(ctx context.Context, order model.Order) (model.Order, error) {
	if !order.CanMarkCompleted() {
		return model.Order{}, ErrIllegalTransition
	}
	return u.orders.MarkCompleted(ctx, order.ID)
}
