package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

// IsSubscriptionActive reports whether sub is active at now. A
// subscription is active through the instant it expires.
func IsSubscriptionActive(sub *domain.Subscription, now time.Time) bool {
	return sub != nil && !now.After(sub.ExpiresAt)
}

// SubscriptionGate admits or rejects brand-scoped writes based on the
// brand's subscription, and grants trials and renewals.
type SubscriptionGate struct {
	repo      port.BrandRepository
	freeTrial time.Duration
	now       func() time.Time
}

// NewSubscriptionGate creates a gate. freeTrial is the length of the
// one-time trial window.
func NewSubscriptionGate(repo port.BrandRepository, freeTrial time.Duration) *SubscriptionGate {
	return &SubscriptionGate{repo: repo, freeTrial: freeTrial, now: time.Now}
}

// Require fails with domain.ErrSubscriptionInactive unless the brand has an
// active subscription.
func (g *SubscriptionGate) Require(ctx context.Context, brandID uuid.UUID) error {
	sub, err := g.repo.GetSubscription(ctx, brandID)
	if err != nil {
		return err
	}
	if !IsSubscriptionActive(sub, g.now()) {
		return domain.ErrSubscriptionInactive
	}
	return nil
}

// GrantFreeTrial starts the brand's trial. A brand gets one trial ever,
// even after it expires; the check happens in the same write that grants
// it.
func (g *SubscriptionGate) GrantFreeTrial(ctx context.Context, brandID uuid.UUID) (*domain.Subscription, error) {
	now := g.now().UTC()
	granted, err := g.repo.ClaimFreeTrial(ctx, brandID, now, now.Add(g.freeTrial))
	if err != nil {
		return nil, fmt.Errorf("claim free trial: %w", err)
	}
	if !granted {
		return nil, domain.ErrFreeTrialUsed
	}
	return g.repo.GetSubscription(ctx, brandID)
}

// Renew extends the subscription by period, counted from the current
// expiry when still active and from now otherwise. It is called by the
// payment gateway integration after a successful checkout.
func (g *SubscriptionGate) Renew(ctx context.Context, brandID uuid.UUID, period time.Duration) (*domain.Subscription, error) {
	if period <= 0 {
		return nil, domain.ErrInvalidInput
	}
	sub, err := g.repo.GetSubscription(ctx, brandID)
	if err != nil {
		return nil, err
	}
	now := g.now().UTC()
	start, base := now, now
	if sub != nil {
		start = sub.StartedAt
		if IsSubscriptionActive(sub, now) {
			base = sub.ExpiresAt
		} else {
			start = now
		}
	}
	if err = g.repo.ExtendSubscription(ctx, brandID, start, base.Add(period)); err != nil {
		return nil, fmt.Errorf("extend subscription: %w", err)
	}
	return g.repo.GetSubscription(ctx, brandID)
}
