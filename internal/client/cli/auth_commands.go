package cli

import (
	"context"
	"fmt"

	"github.com/rohitpatil05/finlens/internal/client/api"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	username, err := GetSimpleText(a.reader, "Username or email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		snap := a.store.Snapshot()
		if snap.Auth.Error != "" {
			fmt.Fprintln(a.out, "Login failed:", snap.Auth.Error)
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", user.Username, user.Role)
	return nil
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, api.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		snap := a.store.Snapshot()
		if snap.Auth.Error != "" {
			fmt.Fprintln(a.out, "Registration failed:", snap.Auth.Error)
			return nil
		}
		return err
	}
	if user != nil {
		fmt.Fprintf(a.out, "Account created; logged in as %s\n", user.Username)
	} else {
		fmt.Fprintln(a.out, "Account created; use 'login' to sign in")
	}
	return nil
}

func (a *App) cmdResetPassword(ctx context.Context, args []string) error {
	email, err := GetSimpleText(a.reader, "Account email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, email); err != nil {
		snap := a.store.Snapshot()
		if snap.Auth.Error != "" {
			fmt.Fprintln(a.out, "Reset failed:", snap.Auth.Error)
			return nil
		}
		return err
	}
	fmt.Fprintln(a.out, "If the address is registered, a reset mail is on its way.")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context, args []string) error {
	snap := a.store.Snapshot()
	u := snap.Auth.User
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s\n", u.Username, u.Email, u.Role)
	return nil
}

func (a *App) cmdLogout(ctx context.Context, args []string) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
