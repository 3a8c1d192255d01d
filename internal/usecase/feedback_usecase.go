package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"app/internal/api"
	"app/internal/dateutil"
	"app/internal/domain/model"
	"app/internal/validator"
)

// フィードバックAPIの約束
type FeedbackAPI interface {
	List(ctx context.Context) ([]model.Feedback, error)
	GetByUser(ctx context.Context, userID int64) ([]model.Feedback, error)
	GetByVendor(ctx context.Context, vendorID int64) ([]model.Feedback, error)
	Create(ctx context.Context, in api.CreateFeedbackInput) (model.Feedback, error)
}

// FeedbackUsecase は評価の作成と一覧の絞り込み。
type FeedbackUsecase struct {
	feedback FeedbackAPI
	clock    Clock
}

func NewFeedbackUsecase(feedback FeedbackAPI, clock Clock) *FeedbackUsecase {
	return &FeedbackUsecase{feedback: feedback, clock: clock}
}

func (u *FeedbackUsecase) Create(ctx context.Context, in api.CreateFeedbackInput) (model.Feedback, error) {
	if err := validator.ValidateRating(in.Rating); err != nil {
		return model.Feedback{}, err
	}
	return u.feedback.Create(ctx, in)
}

// ReviewedOrders は自分が評価済みの注文ID集合を作り直す。
// サーバー側の「1注文1件」制約のヒントであって正であることの保証ではない。
func (u *FeedbackUsecase) ReviewedOrders(ctx context.Context, userID int64) (map[int64]bool, error) {
	list, err := u.feedback.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]bool, len(list))
	for _, f := range list {
		if f.OrderID != 0 {
			out[f.OrderID] = true
		}
	}
	return out, nil
}

type FeedbackListInput struct {
	VendorID int64 // 0なら全体（ADMIN向け）
	Search   string
	Range    HistoryRange
}

// ListFiltered は管理・売店画面の一覧。
func (u *FeedbackUsecase) ListFiltered(ctx context.Context, in FeedbackListInput) ([]model.Feedback, error) {
	var list []model.Feedback
	var err error
	if in.VendorID != 0 {
		list, err = u.feedback.GetByVendor(ctx, in.VendorID)
	} else {
		list, err = u.feedback.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	list = filterFeedbackRange(list, in.Range, u.clock.Now())

	if s := strings.TrimSpace(in.Search); s != "" {
		list = searchFeedback(list, s)
	}
	return list, nil
}

// 日曜起点の週初めを下限にする。元画面の挙動のままで、
// 注文履歴の月曜起点とは揃えない。
func filterFeedbackRange(list []model.Feedback, r HistoryRange, now time.Time) []model.Feedback {
	var lower string
	switch r {
	case RangeToday:
		lower = dateutil.Today(now)
	case RangeWeek:
		lower = dateutil.SundayWeekStart(now)
	case RangeMonth:
		lower = dateutil.MonthStart(now)
	default:
		return list
	}

	out := make([]model.Feedback, 0, len(list))
	for _, f := range list {
		d := dateutil.DatePrefix(f.CreatedAt)
		if d == "" || d < lower {
			continue
		}
		out = append(out, f)
	}
	return out
}

func searchFeedback(list []model.Feedback, query string) []model.Feedback {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Feedback, 0, len(list))
	for _, f := range list {
		if strings.Contains(strings.ToLower(f.Comment), q) ||
			strings.Contains(strings.ToLower(f.ItemName), q) ||
			strings.Contains(strings.ToLower(f.VendorName), q) ||
			strings.Contains(strconv.Itoa(f.Rating), q) {
			out = append(out, f)
		}
	}
	return out
}
