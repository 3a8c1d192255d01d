package usecase

import (
	"context"
	"testing"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

// =====================
// FeedbackAPI mock
// =====================

type feedbackAPIMock struct {
	all      []model.Feedback
	byUser   []model.Feedback
	byVendor []model.Feedback
	created  []api.CreateFeedbackInput

	calledVendor int64
}

func (m *feedbackAPIMock) List(ctx context.Context) ([]model.Feedback, error) {
	return m.all, nil
}

func (m *feedbackAPIMock) GetByUser(ctx context.Context, userID int64) ([]model.Feedback, error) {
	return m.byUser, nil
}

func (m *feedbackAPIMock) GetByVendor(ctx context.Context, vendorID int64) ([]model.Feedback, error) {
	m.calledVendor = vendorID
	return m.byVendor, nil
}

func (m *feedbackAPIMock) Create(ctx context.Context, in api.CreateFeedbackInput) (model.Feedback, error) {
	m.created = append(m.created, in)
	return model.Feedback{ID: 1, Rating: in.Rating, Comment: in.Comment}, nil
}

func TestFeedbackCreate_RejectsInvalidRating(t *testing.T) {
	mock := &feedbackAPIMock{}
	u := NewFeedbackUsecase(mock, fixedClock{testNow})

	_, err := u.Create(context.Background(), api.CreateFeedbackInput{Rating: 0})
	assert.ErrorIs(t, err, validator.ErrInvalidInput)
	_, err = u.Create(context.Background(), api.CreateFeedbackInput{Rating: 6})
	assert.ErrorIs(t, err, validator.ErrInvalidInput)
	assert.Empty(t, mock.created)

	f, err := u.Create(context.Background(), api.CreateFeedbackInput{Rating: 5, Comment: "rico"})
	assert.NoError(t, err)
	assert.Equal(t, 5, f.Rating)
}

func TestReviewedOrders(t *testing.T) {
	mock := &feedbackAPIMock{byUser: []model.Feedback{
		{ID: 1, OrderID: 10},
		{ID: 2, OrderID: 11},
		{ID: 3}, // 注文に紐付かない評価は無視
	}}
	u := NewFeedbackUsecase(mock, fixedClock{testNow})

	reviewed, err := u.ReviewedOrders(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, map[int64]bool{10: true, 11: true}, reviewed)
}

func TestListFiltered_WeekIsSundayAnchored(t *testing.T) {
	// 今日=水曜2026-08-26。日曜起点の週初めは2026-08-23。
	mock := &feedbackAPIMock{all: []model.Feedback{
		{ID: 1, CreatedAt: "2026-08-22T10:00:00"}, // 土曜(先週): 落ちる
		{ID: 2, CreatedAt: "2026-08-23T10:00:00"}, // 日曜: 残る
		{ID: 3, CreatedAt: "2026-08-24T10:00:00"}, // 月曜: 残る
	}}
	u := NewFeedbackUsecase(mock, fixedClock{testNow})

	out, err := u.ListFiltered(context.Background(), FeedbackListInput{Range: RangeWeek})
	assert.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, feedbackIDs(out))
}

func TestListFiltered_VendorScopeAndSearch(t *testing.T) {
	mock := &feedbackAPIMock{byVendor: []model.Feedback{
		{ID: 1, Comment: "muy rico", ItemName: "Ceviche", CreatedAt: "2026-08-26T10:00:00"},
		{ID: 2, Comment: "frío", ItemName: "Tallarines", CreatedAt: "2026-08-26T11:00:00"},
		{ID: 3, Rating: 5, VendorName: "Central", CreatedAt: "2026-08-26T12:00:00"},
	}}
	u := NewFeedbackUsecase(mock, fixedClock{testNow})

	out, err := u.ListFiltered(context.Background(), FeedbackListInput{VendorID: 4, Search: "ceviche"})
	assert.NoError(t, err)
	assert.Equal(t, int64(4), mock.calledVendor)
	assert.Equal(t, []int64{1}, feedbackIDs(out))

	// 評価値の数字でも引っかかる
	out, err = u.ListFiltered(context.Background(), FeedbackListInput{VendorID: 4, Search: "5"})
	assert.NoError(t, err)
	assert.Equal(t, []int64{3}, feedbackIDs(out))
}

func feedbackIDs(list []model.Feedback) []int64 {
	out := make([]int64, 0, len(list))
	for _, f := range list {
		out = append(out, f.ID)
	}
	return out
}
