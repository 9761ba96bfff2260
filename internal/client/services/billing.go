package services

import (
	"context"
	"errors"

	"github.com/notesai/notesai-cli/internal/client/api"
	"github.com/notesai/notesai-cli/internal/client/models"
	"github.com/notesai/notesai-cli/internal/logging"
)

// ErrUnknownPlan is returned when the requested plan is not in the catalog;
// no request is made.
var ErrUnknownPlan = errors.New("unknown plan")

// BillingService brokers the hand-off to the external billing provider's
// hosted pages. Both operations return the provider URL; performing the
// actual hand-off (leaving the application) is the navigation shell's job.
// On any error the user stays where they are — there is never a redirect.
type BillingService interface {
	Plans() []models.Plan
	Checkout(ctx context.Context, planName string) (string, error)
	Portal(ctx context.Context) (string, error)
}

type billingService struct {
	api api.API
	log logging.Logger
}

func NewBillingService(client api.API, log logging.Logger) BillingService {
	return &billingService{api: client, log: log}
}

// Plans returns the immutable plan catalog.
func (s *billingService) Plans() []models.Plan {
	return models.Plans()
}

// Checkout resolves the plan's lookup key and requests a hosted checkout URL.
func (s *billingService) Checkout(ctx context.Context, planName string) (string, error) {
	plan, ok := models.LookupPlan(planName)
	if !ok {
		return "", ErrUnknownPlan
	}

	url, err := s.api.CreateCheckoutSession(ctx, plan.LookupKey)
	if err != nil {
		s.log.Error(ctx, "checkout session creation failed", "plan", planName, "err", err)
		return "", err
	}
	return url, nil
}

// Portal requests a hosted billing-portal URL for the current customer.
func (s *billingService) Portal(ctx context.Context) (string, error) {
	url, err := s.api.CreatePortalSession(ctx)
	if err != nil {
		s.log.Error(ctx, "portal session creation failed", "err", err)
		return "", err
	}
	return url, nil
}
