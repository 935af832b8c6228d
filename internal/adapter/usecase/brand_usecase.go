package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

// BrandUseCase authenticates brands by API key and manages their
// credentials. Subscription operations come from the embedded gate.
type BrandUseCase struct {
	*SubscriptionGate
	repo port.BrandRepository
}

// NewBrandUseCase creates a brand use case sharing gate's repository.
func NewBrandUseCase(repo port.BrandRepository, gate *SubscriptionGate) *BrandUseCase {
	return &BrandUseCase{SubscriptionGate: gate, repo: repo}
}

// AuthenticateBrand resolves a plaintext API key to its brand.
func (u *BrandUseCase) AuthenticateBrand(ctx context.Context, apiKey string) (*domain.Brand, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, domain.ErrUnauthorized
	}
	brand, err := u.repo.FindBrandByAPIKeyHash(ctx, HashAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrUnauthorized
	}
	return brand, nil
}

// RegenerateAPIKey issues a new key for an actively subscribed brand and
// returns its plaintext. The previous key stops working immediately.
func (u *BrandUseCase) RegenerateAPIKey(ctx context.Context, brandID uuid.UUID) (string, error) {
	if err := u.Require(ctx, brandID); err != nil {
		return "", err
	}
	key, err := GenerateAPIKey()
	if err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	if err = u.repo.UpdateAPIKeyHash(ctx, brandID, HashAPIKey(key)); err != nil {
		return "", fmt.Errorf("update api key: %w", err)
	}
	return key, nil
}
