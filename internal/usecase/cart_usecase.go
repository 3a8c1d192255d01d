package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"app/internal/api"
	"app/internal/dateutil"
	"app/internal/domain/model"
)

var (
	// 数量は1以上
	ErrInvalidQuantity = errors.New("invalid quantity")

	// 追加合計が在庫を超える
	ErrStockExceeded = errors.New("stock exceeded")

	// 在庫0または非公開の項目
	ErrItemNotOrderable = errors.New("item not orderable")

	// 空カートでのチェックアウト
	ErrCartEmpty = errors.New("cart is empty")
)

// 注文APIの約束（テストでモックする）
type OrderCreator interface {
	Create(ctx context.Context, in api.CreateOrderInput) (model.Order, error)
	Cancel(ctx context.Context, orderID int64) (model.Order, error)
}

// CartUsecase はカートの業務ロジック。
// 行は (menuItemID, vendorID, date) をキーに1本化し、
// チェックアウトで (vendorID, date) ごとに注文へまとめる。
type CartUsecase struct {
	orders OrderCreator
	clock  Clock
	logger *slog.Logger

	mu    sync.Mutex
	lines []model.CartLine
}

func NewCartUsecase(orders OrderCreator, clock Clock, logger *slog.Logger) *CartUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CartUsecase{orders: orders, clock: clock, logger: logger}
}

// AddLine はカートに追加する。同じ (item, vendor, date) は数量加算。
// dateが空なら項目の日付、それも無ければ当日。
func (u *CartUsecase) AddLine(item model.MenuItem, quantity int64, date string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if !item.Orderable() {
		return ErrItemNotOrderable
	}

	if date == "" {
		date = item.Date
	}
	if date == "" {
		date = dateutil.Today(u.clock.Now())
	}
	date = dateutil.DatePrefix(date)

	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.lines {
		l := &u.lines[i]
		if l.MenuItemID == item.ID && l.VendorID == item.VendorID && l.Date == date {
			// 加算後の合計で在庫チェック
			if item.Stock != nil && l.Quantity+quantity > *item.Stock {
				return ErrStockExceeded
			}
			l.Quantity += quantity
			return nil
		}
	}

	if item.Stock != nil && quantity > *item.Stock {
		return ErrStockExceeded
	}

	u.lines = append(u.lines, model.CartLine{
		MenuItemID: item.ID,
		ItemName:   item.ItemName,
		Price:      item.Price,
		VendorID:   item.VendorID,
		Date:       date,
		Quantity:   quantity,
	})
	return nil
}

// RemoveLine は行を消す。vendorID=0 / date="" は「指定なし」で、
// その場合はitemIDが一致する行を全部消す。
func (u *CartUsecase) RemoveLine(itemID int64, vendorID int64, date string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	kept := u.lines[:0]
	for _, l := range u.lines {
		match := l.MenuItemID == itemID
		if vendorID != 0 {
			match = match && l.VendorID == vendorID
		}
		if date != "" {
			match = match && l.Date == dateutil.DatePrefix(date)
		}
		if !match {
			kept = append(kept, l)
		}
	}
	u.lines = kept
}

// Lines は行のコピーを返す。
func (u *CartUsecase) Lines() []model.CartLine {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]model.CartLine, len(u.lines))
	copy(out, u.lines)
	return out
}

// Clear はカートを空にする。
func (u *CartUsecase) Clear() {
	u.mu.Lock()
	u.lines = nil
	u.mu.Unlock()
}

// Total は単価×数量の合計。価格文字列が読めない行は0円扱い
// （防御であって正しさの保証ではない）。
func (u *CartUsecase) Total() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	var total float64
	for _, l := range u.lines {
		price, err := strconv.ParseFloat(l.Price, 64)
		if err != nil {
			continue
		}
		total += price * float64(l.Quantity)
	}
	return total
}

type CheckoutOutput struct {
	Orders []model.Order
}

// 注文グループのキー
type groupKey struct {
	VendorID int64
	Date     string
}

// Checkout は (vendor, date) ごとに1注文を同時に作成する。
// 全部さばけたらカートを空にして作成済み注文を返す。
// 一部だけ失敗したら、成功した注文をベストエフォートでキャンセルしてから
// 最初の失敗を返す（キャンセル失敗はログのみ）。在庫はまだ引かれていない。
func (u *CartUsecase) Checkout(ctx context.Context, userID int64, paymentMethod string) (CheckoutOutput, error) {
	u.mu.Lock()
	lines := make([]model.CartLine, len(u.lines))
	copy(lines, u.lines)
	u.mu.Unlock()

	if len(lines) == 0 {
		return CheckoutOutput{}, ErrCartEmpty
	}

	// 挿入順を保ってグループ化
	groups := make(map[groupKey][]model.OrderItem)
	var order []groupKey
	for _, l := range lines {
		k := groupKey{VendorID: l.VendorID, Date: l.Date}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], model.OrderItem{
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
			Date:       l.Date,
		})
	}

	type result struct {
		order model.Order
		err   error
	}

	// 全注文を同時に投げて全部の決着を待つ
	results := make([]result, len(order))
	var wg sync.WaitGroup
	for i, k := range order {
		wg.Add(1)
		go func(i int, k groupKey) {
			defer wg.Done()
			in := api.CreateOrderInput{
				UserID:        userID,
				VendorID:      k.VendorID,
				PaymentMethod: paymentMethod,
				Items:         groups[k],
				Date:          k.Date,
			}
			o, err := u.orders.Create(ctx, in)
			results[i] = result{order: o, err: err}
		}(i, k)
	}
	wg.Wait()

	var created []model.Order
	var firstErr error
	for _, r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		created = append(created, r.order)
	}

	if firstErr != nil {
		// 補償: 作れてしまった注文を取り消す
		for _, o := range created {
			if o.ID == 0 {
				continue
			}
			if _, err := u.orders.Cancel(ctx, o.ID); err != nil {
				u.logger.Warn("checkout rollback: cancel failed",
					"orderId", o.ID, "err", err)
			}
		}
		return CheckoutOutput{}, firstErr
	}

	u.Clear()
	return CheckoutOutput{Orders: created}, nil
}
