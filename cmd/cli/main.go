package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"app/internal/api"
	"app/internal/cli"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/prefs"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは任意（CLIは環境変数だけでも動く）
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	//ローカル保存
	gormDB, err := db.Connect(cfg.StoragePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "storage:", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(&model.StorageEntry{}); err != nil {
		fmt.Fprintln(os.Stderr, "storage migrate:", err)
		os.Exit(1)
	}
	kvRepo := infraRepo.NewKVGormRepository(gormDB)

	clock := &realClock{}
	idGen := &uuidGenerator{}

	ctx := context.Background()

	sessions := session.NewStore(kvRepo, clock, cfg.HydrateTimeout, logger)
	sessions.Hydrate(ctx)

	themes := prefs.NewStore(kvRepo, logger)
	themes.Load(ctx)

	//APIクライアントとリソース別サービス
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, sessions, sessions, idGen, logger)
	authAPI := api.NewAuthService(client)
	usersAPI := api.NewUsersService(client)
	vendorsAPI := api.NewVendorsService(client)
	menusAPI := api.NewMenuItemsService(client)
	ordersAPI := api.NewOrdersService(client)
	paymentsAPI := api.NewPaymentsService(client)
	feedbackAPI := api.NewFeedbackService(client)
	dashboardAPI := api.NewDashboardService(client)

	app := &cli.App{
		Out:      os.Stdout,
		Sessions: sessions,
		Prefs:    themes,

		Auth:       usecase.NewAuthUsecase(authAPI, sessions),
		Cart:       usecase.NewCartUsecase(ordersAPI, clock, logger),
		Menus:      usecase.NewMenuUsecase(menusAPI, clock),
		MenuManage: usecase.NewMenuManageUsecase(menusAPI, clock),
		Orders:     usecase.NewOrderUsecase(ordersAPI, clock),
		Payments:   usecase.NewPaymentUsecase(paymentsAPI),
		Feedback:   usecase.NewFeedbackUsecase(feedbackAPI, clock),
		Admin:      usecase.NewAdminUsecase(usersAPI, vendorsAPI),
		Dashboard:  dashboardAPI,
	}

	os.Exit(app.Run(ctx, os.Args[1:]))
}
