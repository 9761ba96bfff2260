package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/notesai/notesai-cli/internal/client/services"
	"github.com/notesai/notesai-cli/internal/client/state"
)

// Account shows the user's profile and saved notes. The snapshot carried
// from the previous surface is reused when present; otherwise it is fetched.
// Either way the resolved snapshot is kept for the next surface.
func (a *App) Account(ctx context.Context) error {
	snap := state.Resolve(ctx, a.log, a.gateway, a.carried)
	a.carried = &snap

	printlnFn("Username:", snap.Profile.Username)
	printlnFn("Email:", snap.Profile.Email)

	if len(snap.Notes) == 0 {
		printlnFn("No saved notes")
		return nil
	}
	printlnFn("Saved notes:")
	for _, n := range snap.Notes {
		printlnFn(fmt.Sprintf("  %s (saved %s)", n.PathToNote, n.SavedAt))
	}
	return nil
}

// History prints the purchase history, one line per subscription record.
func (a *App) History(ctx context.Context) error {
	records, err := a.account.PurchaseHistory(ctx)
	if err != nil {
		printErr(err)
		return err
	}

	if len(records) == 0 {
		printlnFn("No purchases yet")
		return nil
	}
	for _, r := range records {
		printlnFn(fmt.Sprintf("  %s, period %.0f days", r.Status, r.SubscriptionPeriodDays()))
	}
	return nil
}

// ChangePassword prompts for the old and new passwords and rotates the
// credential. A successful change expires the session server-side, so the
// shell logs the user out and asks them to log in again.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword("Enter current password", os.Stdout)
	if err != nil {
		return err
	}

	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}

	form := services.PasswordChangeForm{
		OldPassword:        oldPassword,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirm,
	}
	if err := a.account.ChangePassword(ctx, form); err != nil {
		printErr(err)
		return err
	}

	_ = a.resetLogin()
	printlnFn("Password changed, please log in again")
	return nil
}

// DeleteAccount asks for the password twice and deletes the account. The
// equality check happens locally; nothing is sent on a mismatch. On success
// the session is gone and the shell returns to the unauthenticated state.
func (a *App) DeleteAccount(ctx context.Context) error {
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.account.DeleteAccount(ctx, password, confirm); err != nil {
		printErr(err)
		return err
	}

	_ = a.resetLogin()
	printlnFn("Account deleted")
	return nil
}
