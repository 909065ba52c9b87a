package cli

import (
	"context"
	"fmt"

	"finboard/internal/notify"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := a.flags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}

	if err := a.session.Login(ctx, *email, *password); err != nil {
		a.notifier.Notify(ctx, notify.Error(errorMessage(err, "Login failed")))
		return err
	}
	a.printUser()
	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs := a.flags("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}

	if err := a.session.Register(ctx, *name, *email, *password); err != nil {
		a.notifier.Notify(ctx, notify.Error(errorMessage(err, "Registration failed")))
		return err
	}
	a.printUser()
	return nil
}

// runLogout clears the local session at once; the server is told in the
// background and Close waits for it.
func (a *App) runLogout(ctx context.Context, args []string) error {
	if err := parse(a.flags("logout"), args); err != nil {
		return err
	}
	a.session.Logout(ctx)
	return nil
}

func (a *App) runWhoami(ctx context.Context, args []string) error {
	if err := parse(a.flags("whoami"), args); err != nil {
		return err
	}
	if _, ok := a.session.User(); !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return ErrNotLoggedIn
	}
	a.printUser()
	return nil
}

func (a *App) printUser() {
	if u, ok := a.session.User(); ok {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	}
}
