package cli

import (
	"context"
	"flag"
	"fmt"

	"app/internal/api"
	"app/internal/domain/model"
	"app/internal/usecase"
)

func (a *App) cmdVendors(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		sub = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("vendors "+sub, flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.Int64("id", 0, "id del vendedor")
	name := fs.String("name", "", "nombre")
	ubication := fs.String("ubication", "", "ubicación")
	openTime := fs.String("open", "", "hora de apertura HH:mm")
	closeTime := fs.String("close", "", "hora de cierre HH:mm")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if _, err := a.requireSession(); err != nil {
		return err
	}

	in := api.VendorInput{
		Name:        *name,
		Ubication:   *ubication,
		OpeningTime: *openTime,
		ClosingTime: *closeTime,
	}

	switch sub {
	case "list":
		vendors, err := a.Admin.ListVendors(ctx)
		if err != nil {
			return err
		}
		w := a.table()
		fmt.Fprintln(w, "ID\tNOMBRE\tUBICACIÓN\tHORARIO")
		for _, v := range vendors {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s-%s\n", v.ID, v.Name, v.Ubication, v.OpeningTime, v.ClosingTime)
		}
		w.Flush()
		return nil
	case "create":
		v, err := a.Admin.CreateVendor(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "vendedor %d creado\n", v.ID)
		return nil
	case "update":
		if *id <= 0 {
			return fmt.Errorf("indica -id")
		}
		v, err := a.Admin.UpdateVendor(ctx, *id, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "vendedor %d actualizado\n", v.ID)
		return nil
	case "delete":
		if *id <= 0 {
			return fmt.Errorf("indica -id")
		}
		if err := a.Admin.DeleteVendor(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "vendedor %d eliminado\n", *id)
		return nil
	default:
		return fmt.Errorf("subcomando desconocido: %s", sub)
	}
}

func (a *App) cmdUsers(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		sub = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("users "+sub, flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.Int64("id", 0, "id del usuario")
	role := fs.String("role", "", "USER|VENDOR|ADMIN")
	vendor := fs.Int64("vendor", 0, "vendedor asignado (rol VENDOR)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if _, err := a.requireSession(); err != nil {
		return err
	}

	switch sub {
	case "list":
		users, err := a.Admin.ListUsers(ctx)
		if err != nil {
			return err
		}
		w := a.table()
		fmt.Fprintln(w, "ID\tNOMBRE\tCORREO\tROL\tVENDEDOR")
		for _, u := range users {
			vid := "-"
			if u.VendorID != nil {
				vid = fmt.Sprintf("%d", *u.VendorID)
			}
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n", u.ID, u.FirstName, u.LastName, u.Email, u.Role, vid)
		}
		w.Flush()
		return nil
	case "set-role":
		if *id <= 0 {
			return fmt.Errorf("indica -id")
		}
		u, err := a.Admin.AssignRole(ctx, *id, model.Role(*role), *vendor)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "usuario %d → %s\n", u.ID, u.Role)
		return nil
	default:
		return fmt.Errorf("subcomando desconocido: %s", sub)
	}
}

func (a *App) cmdDashboard(ctx context.Context) error {
	if _, err := a.requireSession(); err != nil {
		return err
	}

	stats, err := a.Dashboard.GetStats(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintf(w, "usuarios\t%d\n", stats.TotalUsers)
	fmt.Fprintf(w, "admins\t%d\n", stats.TotalAdmins)
	fmt.Fprintf(w, "vendedores\t%d\n", stats.TotalVendors)
	fmt.Fprintf(w, "menús\t%d\n", stats.TotalMenuItems)
	fmt.Fprintf(w, "pedidos\t%d\n", stats.TotalOrders)
	fmt.Fprintf(w, "pedidos hoy\t%d\n", stats.TotalOrdersToday)
	fmt.Fprintf(w, "pedidos semana\t%d\n", stats.TotalOrdersThisWeek)
	fmt.Fprintf(w, "comentarios\t%d\n", stats.TotalFeedback)
	w.Flush()
	return nil
}

func (a *App) cmdFeedback(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		sub = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("feedback "+sub, flag.ContinueOnError)
	fs.SetOutput(a.Out)
	rating := fs.Int("rating", 0, "calificación 1-5")
	comment := fs.String("comment", "", "comentario")
	orderID := fs.Int64("order", 0, "id del pedido")
	itemID := fs.Int64("item", 0, "id del menú")
	vendor := fs.Int64("vendor", 0, "filtrar por vendedor")
	search := fs.String("search", "", "búsqueda de texto")
	rng := fs.String("range", "all", "all|today|week|month")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	sess, err := a.requireSession()
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		vendorID := *vendor
		if sess.Role == model.RoleVendor && sess.VendorID != nil {
			vendorID = *sess.VendorID
		}
		list, err := a.Feedback.ListFiltered(ctx, usecase.FeedbackListInput{
			VendorID: vendorID,
			Search:   *search,
			Range:    usecase.HistoryRange(*rng),
		})
		if err != nil {
			return err
		}
		w := a.table()
		fmt.Fprintln(w, "FECHA\tESTRELLAS\tPLATO\tVENDEDOR\tCOMENTARIO")
		for _, f := range list {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", f.CreatedAt, f.Rating, f.ItemName, f.VendorName, f.Comment)
		}
		w.Flush()
		return nil
	case "create":
		// 二重評価はクライアント側のヒントで先に弾く（最終判断はサーバー）
		reviewed, err := a.Feedback.ReviewedOrders(ctx, sess.ID)
		if err == nil && reviewed[*orderID] {
			return fmt.Errorf("ya calificaste el pedido %d", *orderID)
		}

		f, err := a.Feedback.Create(ctx, api.CreateFeedbackInput{
			Rating:     *rating,
			Comment:    *comment,
			UserID:     sess.ID,
			OrderID:    *orderID,
			MenuItemID: *itemID,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "gracias por tu comentario (%d estrellas)\n", f.Rating)
		return nil
	default:
		return fmt.Errorf("subcomando desconocido: %s", sub)
	}
}
