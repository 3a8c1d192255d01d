package e2e

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"app/internal/api"
	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
	domainrepo "app/internal/repository"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	validToken    = "tok-e2e"
	validPassword = "secret123"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// =====================
// 偽バックエンド
// =====================

// fakeBackend はAPIサーバーの最小実装。注文と決済の状態をメモリに持つ。
type fakeBackend struct {
	mu sync.Mutex

	menu        []model.MenuItem
	orders      map[int64]*model.Order
	nextOrderID int64

	// このvendorへの注文作成は失敗させる
	failVendors map[int64]bool

	// POST /ordersで受けた冪等キー
	idempotencyKeys []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		orders:      map[int64]*model.Order{},
		failVendors: map[int64]bool{},
		menu: []model.MenuItem{
			{ID: 1, ItemName: "Arroz con Pollo", Price: "12.50", VendorID: 10, VendorName: "Central", IsAvailable: true},
			{ID: 2, ItemName: "Ceviche", Price: "15.00", VendorID: 10, VendorName: "Central", IsAvailable: true},
			{ID: 3, ItemName: "Tallarines", Price: "10.00", VendorID: 20, VendorName: "Pabellón B", IsAvailable: true},
		},
	}
}

func (b *fakeBackend) start(t *testing.T) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true

	e.POST("/auth/login", b.handleLogin)

	authed := e.Group("", b.requireBearer)
	authed.GET("/menu-items/today", b.handleMenuToday)
	authed.GET("/menu-items/:id", b.handleMenuByID)
	authed.POST("/orders", b.handleCreateOrder)
	authed.GET("/orders/user/:id", b.handleOrdersByUser)
	authed.DELETE("/orders/:id", b.handleCancelOrder)
	authed.POST("/payment/yape/token", b.handlePaymentToken)
	authed.POST("/payment/yape/:id", b.handleCreatePayment)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func (b *fakeBackend) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "Bearer "+validToken {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "token inválido"})
		}
		return next(c)
	}
}

func (b *fakeBackend) handleLogin(c echo.Context) error {
	var in api.LoginRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "cuerpo inválido"})
	}
	if in.Password != validPassword {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "credenciales inválidas"})
	}
	return c.JSON(http.StatusOK, model.Session{
		ID:        7,
		Email:     in.Email,
		FirstName: "Ana",
		Role:      model.RoleUser,
		Token:     validToken,
	})
}

func (b *fakeBackend) handleMenuToday(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, b.menu)
}

func (b *fakeBackend) handleMenuByID(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, it := range b.menu {
		if it.ID == id {
			return c.JSON(http.StatusOK, it)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "menú no encontrado"})
}

func (b *fakeBackend) handleCreateOrder(c echo.Context) error {
	var in api.CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "cuerpo inválido"})
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.idempotencyKeys = append(b.idempotencyKeys, c.Request().Header.Get("X-Idempotency-Key"))

	if b.failVendors[in.VendorID] {
		return c.JSON(http.StatusConflict, echo.Map{"message": "sin stock"})
	}

	b.nextOrderID++
	o := &model.Order{
		ID:            b.nextOrderID,
		Status:        model.OrderStatusPendientePago,
		UserID:        in.UserID,
		VendorID:      in.VendorID,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now().Format("2006-01-02T15:04:05"),
	}
	b.orders[o.ID] = o
	return c.JSON(http.StatusCreated, o)
}

func (b *fakeBackend) handleOrdersByUser(c echo.Context) error {
	userID, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []model.Order{}
	for _, o := range b.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (b *fakeBackend) handleCancelOrder(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.orders[id]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "pedido no encontrado"})
	}
	o.Status = model.OrderStatusCancelado
	return c.JSON(http.StatusOK, o)
}

func (b *fakeBackend) handlePaymentToken(c echo.Context) error {
	if c.QueryParam("phoneNumber") == "" || c.QueryParam("otp") == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "faltan credenciales"})
	}
	return c.JSON(http.StatusOK, "pay-tok-e2e")
}

func (b *fakeBackend) handleCreatePayment(c echo.Context) error {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	b.mu.Lock()
	defer b.mu.Unlock()

	o, ok := b.orders[id]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "pedido no encontrado"})
	}
	o.Status = model.OrderStatusPagado
	o.PickupCode = "PK-" + strconv.FormatInt(id, 10)
	return c.JSON(http.StatusOK, api.PaymentResponse{
		Total:         25.50,
		PaymentMethod: o.PaymentMethod,
	})
}

func (b *fakeBackend) order(id int64) model.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return *b.orders[id]
}

// =====================
// クライアント側の組み立て
// =====================

// testApp は本物の組み立て（sqlite KV + セッション + APIクライアント + usecase）。
type testApp struct {
	KV       domainrepo.KeyValueRepository
	Sessions *session.Store

	Auth     *usecase.AuthUsecase
	Cart     *usecase.CartUsecase
	Menus    *usecase.MenuUsecase
	Orders   *usecase.OrderUsecase
	Payments *usecase.PaymentUsecase
}

func newTestApp(t *testing.T, baseURL string) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.StorageEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	kv := infraRepo.NewKVGormRepository(db)
	return newTestAppWithKV(t, baseURL, kv)
}

func newTestAppWithKV(t *testing.T, baseURL string, kv domainrepo.KeyValueRepository) *testApp {
	t.Helper()

	clock := realClock{}
	sessions := session.NewStore(kv, clock, 3*time.Second, nil)

	client := api.NewClient(baseURL, 5*time.Second, sessions, sessions, uuidGenerator{}, nil)

	return &testApp{
		KV:       kv,
		Sessions: sessions,

		Auth:     usecase.NewAuthUsecase(api.NewAuthService(client), sessions),
		Cart:     usecase.NewCartUsecase(api.NewOrdersService(client), clock, nil),
		Menus:    usecase.NewMenuUsecase(api.NewMenuItemsService(client), clock),
		Orders:   usecase.NewOrderUsecase(api.NewOrdersService(client), clock),
		Payments: usecase.NewPaymentUsecase(api.NewPaymentsService(client)),
	}
}
