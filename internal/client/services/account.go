package services

import (
	"context"
	"errors"

	"github.com/notesai/notesai-cli/internal/client/api"
	"github.com/notesai/notesai-cli/internal/client/models"
	"github.com/notesai/notesai-cli/internal/client/validation"
	"github.com/notesai/notesai-cli/internal/logging"
)

// ErrPasswordMismatch is the local precheck failure of account deletion:
// the confirmation must exactly equal the password before any request.
var ErrPasswordMismatch = errors.New("passwords do not match")

// AccountService covers credential rotation, account removal and purchase
// history.
//
// ChangePassword and DeleteAccount ending successfully means the server has
// expired the session cookie; the caller must navigate to the
// unauthenticated surface.
type AccountService interface {
	ChangePassword(ctx context.Context, form PasswordChangeForm) error
	DeleteAccount(ctx context.Context, password, confirm string) error
	PurchaseHistory(ctx context.Context) ([]models.SubscriptionRecord, error)
}

type accountService struct {
	api      api.API
	validate *validation.Validator
	log      logging.Logger
}

func NewAccountService(client api.API, log logging.Logger) AccountService {
	return &accountService{api: client, validate: validation.New(), log: log}
}

// ChangePassword validates the new password rules and the confirmation
// equality, then submits only the old and new passwords. On failure no local
// state is touched, so the caller can retain field values for retry.
func (s *accountService) ChangePassword(ctx context.Context, form PasswordChangeForm) error {
	if errs := s.validate.Validate(form); errs != nil {
		return errs
	}

	if err := s.api.ChangePassword(ctx, form.OldPassword, form.NewPassword); err != nil {
		s.log.Error(ctx, "password change failed", "err", err)
		return err
	}

	s.log.Info(ctx, "password changed, session ended")
	return nil
}

// DeleteAccount requires the confirmation to exactly equal the password
// before any network call; a mismatch halts submission locally.
func (s *accountService) DeleteAccount(ctx context.Context, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}

	if err := s.api.DeleteAccount(ctx, password); err != nil {
		s.log.Error(ctx, "account deletion failed", "err", err)
		return err
	}

	s.log.Info(ctx, "account deleted, session ended")
	return nil
}

// PurchaseHistory fetches the subscription records. An empty list is a valid
// empty state, not an error.
func (s *accountService) PurchaseHistory(ctx context.Context) ([]models.SubscriptionRecord, error) {
	records, err := s.api.PurchaseHistory(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}
