package usecase

import (
	"context"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// =====================
// MenuLister mock
// =====================

type menuListerMock struct {
	items []model.MenuItem

	// 呼ばれたエンドポイントの記録
	calledWeekStart string
	calledDate      string
	calledVendor    int64
	calledMethod    string
}

func (m *menuListerMock) List(ctx context.Context) ([]model.MenuItem, error) {
	m.calledMethod = "List"
	return m.items, nil
}

func (m *menuListerMock) GetByID(ctx context.Context, id int64) (model.MenuItem, error) {
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.MenuItem{}, nil
}

func (m *menuListerMock) GetToday(ctx context.Context) ([]model.MenuItem, error) {
	m.calledMethod = "GetToday"
	return m.items, nil
}

func (m *menuListerMock) GetByDate(ctx context.Context, date string) ([]model.MenuItem, error) {
	m.calledMethod = "GetByDate"
	m.calledDate = date
	return m.items, nil
}

func (m *menuListerMock) GetByWeek(ctx context.Context, weekStart string) ([]model.MenuItem, error) {
	m.calledMethod = "GetByWeek"
	m.calledWeekStart = weekStart
	return m.items, nil
}

func (m *menuListerMock) GetAllByVendor(ctx context.Context, vendorID int64) ([]model.MenuItem, error) {
	m.calledMethod = "GetAllByVendor"
	m.calledVendor = vendorID
	return m.items, nil
}

func (m *menuListerMock) GetByVendorToday(ctx context.Context, vendorID int64) ([]model.MenuItem, error) {
	m.calledMethod = "GetByVendorToday"
	m.calledVendor = vendorID
	return m.items, nil
}

func (m *menuListerMock) GetByVendorAndDate(ctx context.Context, vendorID int64, date string) ([]model.MenuItem, error) {
	m.calledMethod = "GetByVendorAndDate"
	m.calledVendor = vendorID
	m.calledDate = date
	return m.items, nil
}

func (m *menuListerMock) GetByVendorAndWeek(ctx context.Context, vendorID int64, weekStart string) ([]model.MenuItem, error) {
	m.calledMethod = "GetByVendorAndWeek"
	m.calledVendor = vendorID
	m.calledWeekStart = weekStart
	return m.items, nil
}

func datedItem(id int64, date string) model.MenuItem {
	return model.MenuItem{
		ID:          id,
		ItemName:    "plato",
		Price:       "10.00",
		VendorID:    1,
		IsAvailable: true,
		Date:        date,
	}
}

func TestBrowse_WeekUsesMondayWeekStart(t *testing.T) {
	lister := &menuListerMock{}
	u := NewMenuUsecase(lister, fixedClock{testNow}) // 水曜

	_, err := u.Browse(context.Background(), BrowseInput{Filter: FilterWeek})
	assert.NoError(t, err)
	assert.Equal(t, "GetByWeek", lister.calledMethod)
	assert.Equal(t, "2026-08-24", lister.calledWeekStart) // 月曜

	_, err = u.Browse(context.Background(), BrowseInput{Filter: FilterWeek, VendorID: 3})
	assert.NoError(t, err)
	assert.Equal(t, "GetByVendorAndWeek", lister.calledMethod)
	assert.Equal(t, int64(3), lister.calledVendor)
}

func TestBrowse_InvalidDateRejected(t *testing.T) {
	u := NewMenuUsecase(&menuListerMock{}, fixedClock{testNow})

	_, err := u.Browse(context.Background(), BrowseInput{Filter: FilterDate, Date: "27/08/2026"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = u.Browse(context.Background(), BrowseInput{Filter: MenuFilter("nope")})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestNormalize_ExpandsAvailabilities(t *testing.T) {
	items := []model.MenuItem{
		{
			ID:          1,
			ItemName:    "menú del día",
			IsAvailable: true,
			Availabilities: []model.Availability{
				{Date: "2026-08-26", IsAvailable: true, Stock: stockOf(5)},
				{Date: "2026-08-27", IsAvailable: false},
			},
		},
		datedItem(2, "2026-08-26"),
	}

	out := Normalize(items)
	assert.Len(t, out, 3)
	assert.Equal(t, "2026-08-26", out[0].Date)
	assert.Equal(t, int64(5), *out[0].Stock)
	assert.Equal(t, "2026-08-27", out[1].Date)
	assert.False(t, out[1].IsAvailable)
	assert.Nil(t, out[0].Availabilities)
}

func TestFilterForward_WindowIsTodayThroughSunday(t *testing.T) {
	// 今日=水曜2026-08-26、今週の日曜=2026-08-30
	items := []model.MenuItem{
		datedItem(1, "2026-08-25"), // 昨日: 落ちる
		datedItem(2, "2026-08-26"), // 今日: 残る
		datedItem(3, "2026-08-30"), // 日曜: 残る
		datedItem(4, "2026-08-31"), // 来週月曜: weekでは落ちる
	}

	out := FilterForward(items, FilterWeek, "", testNow)
	ids := itemIDs(out)
	assert.Equal(t, []int64{2, 3}, ids)

	// todayフィルタでも過去は落ちるが、上限は日曜ではない
	out = FilterForward(items, FilterToday, "", testNow)
	assert.Equal(t, []int64{2, 3, 4}, itemIDs(out))
}

func TestFilterForward_ExactDateMatchIsStringBased(t *testing.T) {
	items := []model.MenuItem{
		datedItem(1, "2026-08-27T00:00:00.000Z"),
		datedItem(2, "2026-08-28T12:00:00"),
	}

	// タイムスタンプ付きでも日付部分の一致で選ぶ（TZ換算で前日にズレない）
	out := FilterForward(items, FilterDate, "2026-08-27", testNow)
	assert.Equal(t, []int64{1}, itemIDs(out))
}

func TestFilterForward_UndatedAndUnorderable(t *testing.T) {
	undated := datedItem(1, "")
	soldOut := datedItem(2, "2026-08-27")
	soldOut.Stock = stockOf(0)
	hidden := datedItem(3, "2026-08-27")
	hidden.IsAvailable = false
	past := datedItem(4, "2020-01-01")

	out := FilterForward([]model.MenuItem{undated, soldOut, hidden, past}, FilterWeek, "", testNow)
	// 常設は日付条件を素通り、在庫0と非公開と過去は落ちる
	assert.Equal(t, []int64{1}, itemIDs(out))

	// allは日付で絞らないが、注文不可は常に落とす
	out = FilterForward([]model.MenuItem{undated, soldOut, hidden, past}, FilterAll, "", testNow)
	assert.Equal(t, []int64{1, 4}, itemIDs(out))
}

func TestSortByDate_UndatedFirstThenAscending(t *testing.T) {
	items := []model.MenuItem{
		datedItem(1, "2026-08-28"),
		datedItem(2, ""),
		datedItem(3, "2026-08-26T12:00:00"),
		datedItem(4, "2026-08-27"),
	}

	SortByDate(items)
	assert.Equal(t, []int64{2, 3, 4, 1}, itemIDs(items))
}

func TestSearchMenu(t *testing.T) {
	a := datedItem(1, "")
	a.ItemName = "Arroz con Pollo"
	a.VendorName = "Cafetería Central"
	b := datedItem(2, "")
	b.ItemName = "Tallarines"
	b.Description = "con pollo saltado"
	c := datedItem(3, "")
	c.ItemName = "Ceviche"

	items := []model.MenuItem{a, b, c}
	assert.Equal(t, []int64{1, 2}, itemIDs(SearchMenu(items, "POLLO")))
	assert.Equal(t, []int64{1}, itemIDs(SearchMenu(items, "central")))
	assert.Empty(t, itemIDs(SearchMenu(items, "chaufa")))
}

func itemIDs(items []model.MenuItem) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
