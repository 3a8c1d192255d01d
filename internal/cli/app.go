// Package cli は画面に相当するコマンド群。データ取得と更新は
// usecase経由で行い、ここでは表示と入力の解釈だけをする。
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/nav"
	"app/internal/prefs"
	"app/internal/session"
	"app/internal/usecase"
)

type App struct {
	Out io.Writer

	Sessions *session.Store
	Prefs    *prefs.Store

	Auth       *usecase.AuthUsecase
	Cart       *usecase.CartUsecase
	Menus      *usecase.MenuUsecase
	MenuManage *usecase.MenuManageUsecase
	Orders     *usecase.OrderUsecase
	Payments   *usecase.PaymentUsecase
	Feedback   *usecase.FeedbackUsecase
	Admin      *usecase.AdminUsecase
	Dashboard  *api.DashboardService
}

var errUsage = errors.New("usage")

// Run はサブコマンドを実行して終了コードを返す。
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	var err error
	switch args[0] {
	case "login":
		err = a.cmdLogin(ctx, args[1:])
	case "register":
		err = a.cmdRegister(ctx, args[1:])
	case "logout":
		a.Auth.Logout(ctx)
		fmt.Fprintln(a.Out, "sesión cerrada")
	case "whoami":
		err = a.cmdWhoami()
	case "theme":
		err = a.cmdTheme(ctx, args[1:])
	case "menus":
		err = a.cmdMenus(ctx, args[1:])
	case "checkout":
		err = a.cmdCheckout(ctx, args[1:])
	case "orders":
		err = a.cmdOrders(ctx, args[1:])
	case "pay":
		err = a.cmdPay(ctx, args[1:])
	case "feedback":
		err = a.cmdFeedback(ctx, args[1:])
	case "manage-menus":
		err = a.cmdManageMenus(ctx, args[1:])
	case "vendors":
		err = a.cmdVendors(ctx, args[1:])
	case "users":
		err = a.cmdUsers(ctx, args[1:])
	case "dashboard":
		err = a.cmdDashboard(ctx)
	default:
		a.usage()
		return 2
	}

	if err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintln(a.Out, "error:", renderError(err))
		return 1
	}
	return 0
}

func (a *App) usage() {
	fmt.Fprintln(a.Out, `uso: cafeteria <comando>

  login / register / logout / whoami / theme
  menus / checkout / orders / pay / feedback
  manage-menus (VENDOR)
  vendors / users / dashboard (ADMIN)`)
}

// エラーは画面境界で1行のメッセージにする。
func renderError(err error) string {
	if errors.Is(err, api.ErrServiceUnavailable) {
		return "el servidor no está disponible. Verifica que el backend esté corriendo."
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// requireSession はログイン必須のコマンド用。
func (a *App) requireSession() (model.Session, error) {
	sess, ok := a.Sessions.Current()
	if !ok {
		return model.Session{}, errors.New("no has iniciado sesión")
	}
	return sess, nil
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
}

// タブ一覧（ロール別の表示確認用）
func (a *App) printTabs(role model.Role) {
	w := a.table()
	for _, t := range nav.VisibleTabs(role) {
		fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Title)
	}
	w.Flush()
}
