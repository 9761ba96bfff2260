// Package services contains the client's flows: each validates its form
// locally, then talks to the backend through the session gateway. A failing
// validation blocks the network call entirely, and no flow lets its failure
// leak into another flow's state.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/notesai/notesai-cli/internal/client/api"
	"github.com/notesai/notesai-cli/internal/client/validation"
	"github.com/notesai/notesai-cli/internal/logging"
)

// ErrInvalidCredentials marks a login or signup the server rejected.
// The wrapped message carries server-provided detail when present.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService establishes and tears down the session.
//
// Contract:
//   - Login / Signup: validate first; on success the session cookie is
//     implicitly established by the transport.
//   - RequestPasswordReset: validate the email, then ask the server to send
//     a reset message.
//
// All methods honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, form LoginForm) error
	Signup(ctx context.Context, form SignupForm) error
	RequestPasswordReset(ctx context.Context, form ResetForm) error
}

type authService struct {
	api      api.API
	validate *validation.Validator
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway.
func NewAuthService(client api.API, log logging.Logger) AuthService {
	return &authService{api: client, validate: validation.New(), log: log}
}

// Login validates the credential pair and submits it. Validation failures
// are returned as *validation.FieldErrors without any network traffic.
func (s *authService) Login(ctx context.Context, form LoginForm) error {
	if errs := s.validate.Validate(form); errs != nil {
		return errs
	}

	if err := s.api.Login(ctx, form.Username, form.Password); err != nil {
		var rejected *api.RejectedError
		if errors.As(err, &rejected) {
			s.log.Info(ctx, "login rejected", "status", rejected.StatusCode)
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, rejected.Detail())
		}
		return err
	}

	s.log.Info(ctx, "login successful", "username", form.Username)
	return nil
}

// Signup validates the full form, including the confirmation equality rule,
// and transmits only email, username and password.
func (s *authService) Signup(ctx context.Context, form SignupForm) error {
	if errs := s.validate.Validate(form); errs != nil {
		return errs
	}

	if err := s.api.CreateAccount(ctx, form.Email, form.Username, form.Password); err != nil {
		var rejected *api.RejectedError
		if errors.As(err, &rejected) {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, rejected.Detail())
		}
		return err
	}

	s.log.Info(ctx, "account created", "username", form.Username)
	return nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, form ResetForm) error {
	if errs := s.validate.Validate(form); errs != nil {
		return errs
	}
	return s.api.RequestPasswordReset(ctx, form.Email)
}
