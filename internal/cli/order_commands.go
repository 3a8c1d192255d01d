package cli

import (
	"context"
	"flag"
	"fmt"

	"app/internal/domain/model"
	"app/internal/usecase"
)

// orders [list] -range all|today|week|month -status ESTADO
// orders cancel|ready|complete -order ID
func (a *App) cmdOrders(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		return a.ordersList(ctx, args)
	case "cancel", "ready", "complete":
		return a.ordersTransition(ctx, sub, args)
	default:
		return fmt.Errorf("subcomando desconocido: %s", sub)
	}
}

func (a *App) ordersList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	rng := fs.String("range", "all", "all|today|week|month")
	status := fs.String("status", "", "filtrar por estado")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	sess, err := a.requireSession()
	if err != nil {
		return err
	}

	in := usecase.HistoryInput{
		Range:  usecase.HistoryRange(*rng),
		Status: model.OrderStatus(*status),
	}

	// VENDORは受注一覧、それ以外は自分の注文
	var orders []model.Order
	if sess.Role == model.RoleVendor && sess.VendorID != nil {
		orders, err = a.Orders.ListForVendor(ctx, *sess.VendorID, in)
	} else {
		orders, err = a.Orders.ListForUser(ctx, sess.ID, in)
	}
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tESTADO\tVENDEDOR\tCLIENTE\tCÓDIGO\tFECHA")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.Status, o.VendorName, o.UserName, o.PickupCode, o.CreatedAt)
	}
	w.Flush()
	return nil
}

func (a *App) ordersTransition(ctx context.Context, action string, args []string) error {
	fs := flag.NewFlagSet("orders "+action, flag.ContinueOnError)
	fs.SetOutput(a.Out)
	orderID := fs.Int64("order", 0, "id del pedido")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *orderID <= 0 {
		return fmt.Errorf("indica -order")
	}

	if _, err := a.requireSession(); err != nil {
		return err
	}

	// 最新状態で遷移可否を判定する
	order, err := a.Orders.Get(ctx, *orderID)
	if err != nil {
		return err
	}

	var updated model.Order
	switch action {
	case "cancel":
		updated, err = a.Orders.Cancel(ctx, order)
	case "ready":
		updated, err = a.Orders.MarkReady(ctx, order)
	case "complete":
		updated, err = a.Orders.MarkCompleted(ctx, order)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "pedido %d → %s\n", updated.ID, updated.Status)
	return nil
}

func (a *App) cmdPay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	orderID := fs.Int64("order", 0, "id del pedido")
	phone := fs.String("phone", "", "número de teléfono")
	otp := fs.String("otp", "", "código OTP de 6 dígitos")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	if *orderID <= 0 {
		return fmt.Errorf("indica -order")
	}

	resp, err := a.Payments.Pay(ctx, usecase.PayInput{
		OrderID:     *orderID,
		PhoneNumber: *phone,
		OTP:         *otp,
		PayerEmail:  sess.Email,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "pago iniciado (%s) total=%.2f\n", resp.PaymentMethod, resp.Total)
	if resp.PaymentURL != "" {
		fmt.Fprintln(a.Out, "url:", resp.PaymentURL)
	}
	if resp.QRCode != "" {
		fmt.Fprintln(a.Out, "qr:", resp.QRCode)
	}
	return nil
}
