package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

// Sale prices are stored as numeric(14, 2).
const salePriceScale = 2

var maxSalePrice = decimal.New(1, 12)

// EventUseCase ingests click and sale events. It validates each event
// against the referral, product and campaign it claims and persists it
// through the attribution repository.
type EventUseCase struct {
	repo     port.AttributionRepository
	registry *ReferralRegistry

	// now returns the event arrival time. Tests replace it to pin the day
	// bucket.
	now func() time.Time
}

// NewEventUseCase creates an event ingestor backed by repo.
func NewEventUseCase(repo port.AttributionRepository) *EventUseCase {
	return &EventUseCase{
		repo:     repo,
		registry: NewReferralRegistry(repo),
		now:      time.Now,
	}
}

// RecordClick counts a click for the referral code and returns the
// campaign's redirect URL. Only ACTIVE campaigns accrue clicks. The counter
// is keyed by member, platform and the UTC day of arrival, so retries on the
// same day land on the same row.
func (u *EventUseCase) RecordClick(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", domain.ErrInvalidInput
	}
	ref, err := u.registry.Resolve(ctx, code)
	if err != nil {
		return "", err
	}
	if ref.CampaignStatus != domain.CampaignStatusActive {
		return "", domain.ErrCampaignInactive
	}
	day := domain.DayBucket(u.now())
	if _, err = u.repo.IncrementClick(ctx, ref.MemberID, ref.Platform, day); err != nil {
		return "", fmt.Errorf("increment click: %w", err)
	}
	return ref.RedirectURL, nil
}

// RecordSale checks, in order, the brand credential, the input, the
// referral code and its member, the brand's product and the product's
// attachment to the member's campaign, then appends the sale. The campaign
// status is not checked: sales reported after a campaign completes are
// still attributed.
func (u *EventUseCase) RecordSale(ctx context.Context, in port.SaleInput) error {
	apiKey := strings.TrimSpace(in.APIKey)
	if apiKey == "" {
		return domain.ErrUnauthorized
	}
	brand, err := u.repo.FindBrandByAPIKeyHash(ctx, HashAPIKey(apiKey))
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrUnauthorized
	}

	code := strings.TrimSpace(in.ReferralCode)
	sku := strings.TrimSpace(in.SKU)
	if code == "" || sku == "" || !validSalePrice(in.SalePrice) {
		return domain.ErrInvalidInput
	}

	ref, err := u.registry.Resolve(ctx, code)
	if err != nil {
		return err
	}

	product, err := u.repo.FindProductBySKU(ctx, brand.ID, sku)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}

	link, err := u.repo.FindCampaignProduct(ctx, product.ID, ref.CampaignID)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrProductNotInCampaign
	}

	sale := &domain.SaleEvent{
		ID:                uuid.New(),
		MemberID:          ref.MemberID,
		CampaignProductID: link.ID,
		Platform:          ref.Platform,
		SalePrice:         *in.SalePrice,
		PurchasedAt:       u.now().UTC(),
		IdempotencyKey:    strings.TrimSpace(in.IdempotencyKey),
	}
	if _, err = u.repo.AppendSale(ctx, sale); err != nil {
		return fmt.Errorf("append sale: %w", err)
	}
	return nil
}

// validSalePrice accepts positive prices with at most two decimal places
// that fit the stored column.
func validSalePrice(p *decimal.Decimal) bool {
	if p == nil || !p.IsPositive() || p.GreaterThanOrEqual(maxSalePrice) {
		return false
	}
	return p.Equal(p.Round(salePriceScale))
}
