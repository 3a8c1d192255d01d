package cli

import (
	"context"
	"flag"
	"fmt"

	"app/internal/domain/model"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	email := fs.String("email", "", "correo")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	sess, err := a.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "hola %s %s (%s)\n", sess.FirstName, sess.LastName, sess.Role)
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	first := fs.String("first", "", "nombre")
	last := fs.String("last", "", "apellido")
	email := fs.String("email", "", "correo")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	sess, err := a.Auth.Register(ctx, *first, *last, *email, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "cuenta creada: %s (%s)\n", sess.Email, sess.Role)
	return nil
}

func (a *App) cmdWhoami() error {
	sess, err := a.requireSession()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s %s <%s> rol=%s", sess.FirstName, sess.LastName, sess.Email, sess.Role)
	if sess.VendorID != nil {
		fmt.Fprintf(a.Out, " vendor=%d", *sess.VendorID)
	}
	fmt.Fprintln(a.Out)

	fmt.Fprintln(a.Out, "pestañas visibles:")
	a.printTabs(sess.Role)
	return nil
}

func (a *App) cmdTheme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.Out, a.Prefs.Mode())
		return nil
	}

	mode, ok := model.ParseThemeMode(args[0])
	if !ok {
		return fmt.Errorf("tema desconocido: %s (light/dark/system)", args[0])
	}
	a.Prefs.Set(ctx, mode)
	fmt.Fprintln(a.Out, "tema:", mode)
	return nil
}
