package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/services"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) promptEmail(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter email", a.out)
}

// Login prompts for credentials (the email may be given as an argument),
// authenticates and opens the session.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.promptEmail(args)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	res, err := a.authService.Login(ctx, services.Credentials{Email: email, Password: password})
	if err != nil {
		a.logger.Info(ctx, "login unsuccessful", "error", err)
		return err
	}
	return a.open(ctx, res)
}

// Signup creates an account and opens the session for it.
func (a *App) Signup(ctx context.Context, args []string) error {
	email, err := a.promptEmail(args)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name (optional)", a.out)
	if err != nil {
		return err
	}

	res, err := a.authService.Signup(ctx, services.SignupData{Email: email, Password: password, Name: name})
	if err != nil {
		a.logger.Info(ctx, "signup unsuccessful", "error", err)
		return err
	}
	return a.open(ctx, res)
}

func (a *App) open(ctx context.Context, res *services.AuthResult) error {
	if err := a.session.Login(ctx, res.User, res.Token); err != nil {
		return err
	}
	a.Navigate(common.HomeRoute)
	fmt.Fprintf(a.out, "Welcome, %s\n", res.User.Email())
	return nil
}

// Logout ends the session. It never fails.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	a.authService.Logout(ctx)
	return nil
}

// Whoami prints the current user and what can be read from the token.
func (a *App) Whoami(ctx context.Context, _ []string) error {
	cur := a.session.Current()
	if !cur.IsAuthenticated() {
		return services.ErrNotAuthenticated
	}

	fmt.Fprintf(a.out, "Email: %s\n", cur.User.Email())
	if name := cur.User.String("name"); name != "" {
		fmt.Fprintf(a.out, "Name: %s\n", name)
	}

	if savedAt, ok, err := a.store.SavedAt(ctx); err == nil && ok {
		fmt.Fprintf(a.out, "Signed in: %s\n", savedAt.Local().Format(time.DateTime))
	}

	claims, err := session.ParseClaims(cur.Token)
	if err != nil {
		fmt.Fprintln(a.out, "Token: opaque")
		return nil
	}
	if claims.Subject != "" {
		fmt.Fprintf(a.out, "Subject: %s\n", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		state := "valid"
		if claims.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token expires: %s (%s)\n", claims.ExpiresAt.Local().Format(time.DateTime), state)
	}
	return nil
}
