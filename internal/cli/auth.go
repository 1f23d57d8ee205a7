package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dvergara2005/shopkeeper/internal/common"
	"github.com/dvergara2005/shopkeeper/internal/users"
)

// getSimpleText, getInt and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getInt = GetInt
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create the account.
// Validation problems and duplicate emails are reported to the user; on
// success the new account is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.directory.Register(ctx, users.Registration{
		Name:     name,
		Email:    email,
		Password: string(password),
	})

	var ve *users.ValidationError
	switch {
	case errors.As(err, &ve):
		for _, p := range ve.Problems {
			printlnFn(p)
		}
		return err
	case errors.Is(err, common.ErrDuplicateEmail):
		printlnFn("That email is already registered")
		return err
	case err != nil:
		return err
	}

	printlnFn("Welcome, " + u.Name + "!")
	return nil
}

// Login prompts for credentials and opens a session. A miss on either field
// is reported without saying which one was wrong.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.directory.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Invalid email or password")
			return err
		}
		return err
	}

	printlnFn("Welcome back, " + u.Name + "!")
	return nil
}

// Logout closes the active session, if any.
func (a *App) Logout(ctx context.Context) error {
	cleared, err := a.directory.ClearActiveSession(ctx)
	if err != nil {
		return err
	}
	if !cleared {
		printlnFn("No active session")
		return nil
	}
	printlnFn("Logged out")
	return nil
}

// Recover shows the password stored for a registered email. The original
// storefront displays it on screen verbatim; so do we.
func (a *App) Recover(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := a.directory.RecoverPassword(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No account with that email")
		}
		return err
	}

	printlnFn("Your password is: " + password)
	return nil
}
