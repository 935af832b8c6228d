package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
)

// EventUseCase records attribution events. It is the primary port used by
// the event endpoints.
type EventUseCase interface {
	// RecordClick counts one click for the code's member, platform and the
	// current day, and returns the campaign redirect URL. It fails with
	// domain.ErrReferralNotFound, domain.ErrInvalidMember or
	// domain.ErrCampaignInactive.
	RecordClick(ctx context.Context, code string) (string, error)

	// RecordSale validates the attribution chain and appends a sale event.
	// Failures are reported in check order: domain.ErrUnauthorized,
	// domain.ErrInvalidInput, domain.ErrReferralNotFound,
	// domain.ErrInvalidMember, domain.ErrProductNotFound,
	// domain.ErrProductNotInCampaign.
	RecordSale(ctx context.Context, in SaleInput) error
}

// SaleInput is a sale notification sent by a brand backend.
type SaleInput struct {
	APIKey         string
	ReferralCode   string
	SKU            string
	SalePrice      *decimal.Decimal
	IdempotencyKey string
}

// AnalyticsUseCase builds performance reports.
type AnalyticsUseCase interface {
	Report(ctx context.Context, req ReportReq) (*Report, error)
}

// CampaignUseCase covers the brand and creator operations around the
// attribution core: campaign lifecycle, product attachment, membership,
// and referral codes.
type CampaignUseCase interface {
	CreateCampaign(ctx context.Context, brandID uuid.UUID, in CreateCampaignInput) (*domain.Campaign, error)
	StartCampaign(ctx context.Context, brandID, campaignID uuid.UUID) (*domain.Campaign, error)
	CompleteCampaign(ctx context.Context, brandID, campaignID uuid.UUID) (*domain.Campaign, error)
	AttachProduct(ctx context.Context, brandID, campaignID, productID uuid.UUID) (*domain.CampaignProduct, error)
	AcceptInvite(ctx context.Context, inviteID, creatorID uuid.UUID) (*domain.CampaignMember, error)
	CreateReferralCode(ctx context.Context, creatorID, memberID uuid.UUID, platform domain.Platform) (*domain.ReferralCode, error)
	// OwnsCampaign reports whether the brand owns the campaign; a missing
	// campaign is domain.ErrScopeNotFound.
	OwnsCampaign(ctx context.Context, brandID, campaignID uuid.UUID) error
	// OwnsMember reports whether the creator holds the membership.
	OwnsMember(ctx context.Context, creatorID, memberID uuid.UUID) error
}

// CreateCampaignInput carries the brand-supplied campaign fields.
type CreateCampaignInput struct {
	Name        string
	RedirectURL string
	Payout      domain.PayoutTerms
}

// BrandUseCase authenticates brands and manages their credentials and
// subscription.
type BrandUseCase interface {
	// AuthenticateBrand resolves a plaintext API key to its brand or fails
	// with domain.ErrUnauthorized.
	AuthenticateBrand(ctx context.Context, apiKey string) (*domain.Brand, error)
	// Require fails with domain.ErrSubscriptionInactive unless the brand's
	// subscription is active now.
	Require(ctx context.Context, brandID uuid.UUID) error
	GrantFreeTrial(ctx context.Context, brandID uuid.UUID) (*domain.Subscription, error)
	Renew(ctx context.Context, brandID uuid.UUID, period time.Duration) (*domain.Subscription, error)
	RegenerateAPIKey(ctx context.Context, brandID uuid.UUID) (string, error)
}
