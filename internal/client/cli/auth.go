package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/infowise/internal/client/client"
	"github.com/dmitrijs2005/infowise/internal/client/validate"
	"github.com/dmitrijs2005/infowise/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, password and confirmation and creates the
// account. A successful registration also signs the user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	s, err := a.authService.Register(ctx, email, string(password), string(confirm))
	if err != nil {
		a.reportAuthError(err, string(password))
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", s.Email)
	return nil
}

// Login prompts for credentials and signs in. The feed starts loading in
// the background as soon as the session changes.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		a.reportAuthError(err, "")
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", s.Email)
	return nil
}

// Logout forgets the session locally.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// reportAuthError prints a user-facing explanation of a failed login or
// registration. password, when non-empty, is used to list unmet rules.
func (a *App) reportAuthError(err error, password string) {
	var fields validate.Errors
	switch {
	case errors.As(err, &fields):
		for _, fe := range fields {
			fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
		}
		if _, bad := fields.Field("password"); bad && password != "" {
			for _, c := range validate.PasswordChecks(password) {
				mark := "✗"
				if c.OK {
					mark = "✓"
				}
				fmt.Fprintf(a.out, "    %s %s\n", mark, c.Rule)
			}
		}
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(a.out, "Invalid email or password")
	case errors.Is(err, client.ErrConflict):
		fmt.Fprintln(a.out, "An account with this email already exists")
	case errors.Is(err, client.ErrNetwork):
		fmt.Fprintln(a.out, "Service unavailable, try again later")
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	a.logger.Debug(context.Background(), "auth failed", "error", err)
}
