package cli

import (
	"context"
	"os"

	"github.com/notesai/notesai-cli/internal/client/services"
	"github.com/notesai/notesai-cli/internal/client/state"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Login prompts the user for credentials and tries to authenticate.
//
// On success the backend sets the session cookie on the shared cookie jar,
// the user name is recorded for the prompt, and the state snapshot is
// fetched so subsequent surfaces have a hand-off to reuse. A failed fetch
// only degrades the snapshot; the login itself still succeeds.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, services.LoginForm{Username: userName, Password: password}); err != nil {
		printErr(err)
		return err
	}

	a.userName = userName
	snap := state.Resolve(ctx, a.log, a.gateway, nil)
	a.carried = &snap

	printlnFn("Logged in as", userName)
	return nil
}

// Signup prompts for the account-creation form and attempts to create a new
// account. The confirmation password exists only to be checked locally. On
// success the backend sets the session cookie alongside the created account,
// so the shell lands authenticated with the state snapshot fetched, same as
// after a login.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	form := services.SignupForm{
		Email:           email,
		Username:        userName,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if err := a.auth.Signup(ctx, form); err != nil {
		printErr(err)
		return err
	}

	a.userName = userName
	snap := state.Resolve(ctx, a.log, a.gateway, nil)
	a.carried = &snap

	printlnFn("Account created, logged in as", userName)
	return nil
}

// Reset prompts for an email and requests a password reset message.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.RequestPasswordReset(ctx, services.ResetForm{Email: email}); err != nil {
		printErr(err)
		return err
	}

	printlnFn("If the address is registered, a reset email is on its way")
	return nil
}

// Logout drops the session cookie and clears the carried state. The backend
// has no logout endpoint; forgetting the cookie is the whole operation.
func (a *App) Logout(ctx context.Context) error {
	if err := a.resetLogin(); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Logged out")
	return nil
}
