package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"app/internal/usecase"
)

func (a *App) cmdMenus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("menus", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	filter := fs.String("filter", "today", "today|week|date|all")
	date := fs.String("date", "", "YYYY-MM-DD (filter=date)")
	vendor := fs.Int64("vendor", 0, "id del vendedor (0 = todos)")
	search := fs.String("search", "", "búsqueda de texto")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	items, err := a.Menus.Browse(ctx, usecase.BrowseInput{
		VendorID: *vendor,
		Filter:   usecase.MenuFilter(*filter),
		Date:     *date,
		Search:   *search,
	})
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tFECHA\tNOMBRE\tPRECIO\tSTOCK\tVENDEDOR")
	for _, it := range items {
		stock := "-"
		if it.Stock != nil {
			stock = strconv.FormatInt(*it.Stock, 10)
		}
		date := it.Date
		if date == "" {
			date = "(fijo)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, date, it.ItemName, it.Price, stock, it.VendorName)
	}
	w.Flush()
	return nil
}

// checkout -item id:qty[:fecha] ... -method YAPE
// 項目指定ごとにカートへ積み、(vendor, fecha)単位で注文を作る。
func (a *App) cmdCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	var specs multiFlag
	fs.Var(&specs, "item", "id:cantidad[:fecha] (repetible)")
	method := fs.String("method", "YAPE", "YAPE|PLIN")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	sess, err := a.requireSession()
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("indica al menos un -item id:cantidad")
	}

	for _, spec := range specs {
		itemID, qty, date, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		item, err := a.Menus.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		if err := a.Cart.AddLine(item, qty, date); err != nil {
			return fmt.Errorf("item %d: %w", itemID, err)
		}
	}

	fmt.Fprintf(a.Out, "total: %.2f\n", a.Cart.Total())

	out, err := a.Cart.Checkout(ctx, sess.ID, *method)
	if err != nil {
		// 補償キャンセル済み。在庫はまだ引かれていない。
		return fmt.Errorf("no se pudo crear el pedido (el stock no se ha descontado): %w", err)
	}

	if len(out.Orders) == 1 {
		o := out.Orders[0]
		fmt.Fprintf(a.Out, "pedido %d creado. paga con: cafeteria pay -order %d\n", o.ID, o.ID)
		return nil
	}

	fmt.Fprintf(a.Out, "se crearon %d pedidos. paga cada uno desde \"orders\":\n", len(out.Orders))
	for _, o := range out.Orders {
		fmt.Fprintf(a.Out, "  pedido %d (%s)\n", o.ID, o.VendorName)
	}
	return nil
}

func parseItemSpec(raw string) (itemID int64, qty int64, date string, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, "", fmt.Errorf("formato inválido %q, usa id:cantidad[:fecha]", raw)
	}
	itemID, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("id inválido en %q", raw)
	}
	qty, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("cantidad inválida en %q", raw)
	}
	if len(parts) == 3 {
		date = parts[2]
	}
	return itemID, qty, date, nil
}

// 繰り返し指定できるフラグ
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
