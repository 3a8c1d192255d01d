package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"app/internal/usecase"
)

// manage-menus [list|save|delete] — VENDOR向けのメニュー管理。
func (a *App) cmdManageMenus(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		sub = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("manage-menus "+sub, flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.Int64("id", 0, "id del menú (0 = nuevo)")
	name := fs.String("name", "", "nombre del plato")
	desc := fs.String("desc", "", "descripción")
	price := fs.String("price", "", "precio, ej. 12.50")
	stock := fs.Int64("stock", 0, "stock")
	available := fs.Bool("available", true, "disponible")
	date := fs.String("date", "", "YYYY-MM-DD (vacío = fijo)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	if sess.VendorID == nil {
		return fmt.Errorf("tu cuenta no tiene vendedor asignado")
	}
	vendorID := *sess.VendorID

	switch sub {
	case "list":
		items, err := a.MenuManage.List(ctx, vendorID)
		if err != nil {
			return err
		}
		w := a.table()
		fmt.Fprintln(w, "ID\tFECHA\tNOMBRE\tPRECIO\tSTOCK\tDISPONIBLE")
		for _, it := range items {
			stockStr := "-"
			if it.Stock != nil {
				stockStr = strconv.FormatInt(*it.Stock, 10)
			}
			d := it.Date
			if d == "" {
				d = "(fijo)"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n", it.ID, d, it.ItemName, it.Price, stockStr, it.IsAvailable)
		}
		w.Flush()
		return nil
	case "save":
		item, err := a.MenuManage.Save(ctx, usecase.SaveMenuItemInput{
			ID:          *id,
			ItemName:    *name,
			Description: *desc,
			Price:       *price,
			VendorID:    vendorID,
			Stock:       *stock,
			IsAvailable: *available,
			Date:        *date,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "menú %d guardado\n", item.ID)
		return nil
	case "delete":
		if *id <= 0 {
			return fmt.Errorf("indica -id")
		}
		item, err := a.Menus.GetItem(ctx, *id)
		if err != nil {
			return err
		}
		if *date != "" {
			item.Date = *date
		}
		if err := a.MenuManage.Delete(ctx, item); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "menú %d eliminado\n", *id)
		return nil
	default:
		return fmt.Errorf("subcomando desconocido: %s", sub)
	}
}
