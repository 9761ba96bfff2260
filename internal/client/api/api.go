// Package api implements the session gateway: a JSON HTTP client that owns
// the cookie-carried session and classifies every failure into one of three
// kinds (transport, rejected, malformed response) so flows never see an
// uninspectable error.
package api

import (
	"context"

	"github.com/notesai/notesai-cli/internal/client/models"
)

// API is the full endpoint surface of the Notes-AI backend. Flows depend on
// this interface; *Client is the production implementation.
type API interface {
	// Auth. Login and CreateAccount establish the session cookie.
	Login(ctx context.Context, username, password string) error
	CreateAccount(ctx context.Context, email, username, password string) error
	RequestPasswordReset(ctx context.Context, email string) error

	// Account.
	UserDetails(ctx context.Context) (models.UserDetails, error)
	PurchaseHistory(ctx context.Context) ([]models.SubscriptionRecord, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	DeleteAccount(ctx context.Context, password string) error

	// Notes.
	SaveNote(ctx context.Context, title, notes string) error
	GenerateStudyGuide(ctx context.Context, notes string) (string, error)

	// Billing. Both return the hosted page URL to hand the browser to.
	CreateCheckoutSession(ctx context.Context, lookupKey string) (string, error)
	CreatePortalSession(ctx context.Context) (string, error)
}
