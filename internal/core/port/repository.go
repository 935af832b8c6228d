package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
)

// Repositories are outbound ports in hexagonal architecture. A lookup that
// finds no row returns (nil, nil); errors are reserved for store failures.
// Implementations must be safe for concurrent use.

// ReferralRepository exposes the reads the referral registry needs to walk
// from a code to its campaign.
type ReferralRepository interface {
	// FindReferralCode returns the referral code with the given value.
	FindReferralCode(ctx context.Context, code string) (*domain.ReferralCode, error)
	// GetMember returns a campaign member by id.
	GetMember(ctx context.Context, id uuid.UUID) (*domain.CampaignMember, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
}

// AttributionRepository is the persistence port of the event ingestor.
type AttributionRepository interface {
	ReferralRepository

	// FindBrandByAPIKeyHash returns the brand whose stored key hash matches.
	FindBrandByAPIKeyHash(ctx context.Context, hash string) (*domain.Brand, error)
	// FindProductBySKU returns the brand's product with the given SKU.
	FindProductBySKU(ctx context.Context, brandID uuid.UUID, sku string) (*domain.Product, error)
	// FindCampaignProduct returns the link between a product and a campaign.
	FindCampaignProduct(ctx context.Context, productID, campaignID uuid.UUID) (*domain.CampaignProduct, error)
	// IncrementClick atomically adds one to the (member, platform, day)
	// counter, creating it with count 1 when absent, and returns the new
	// count.
	IncrementClick(ctx context.Context, memberID uuid.UUID, platform domain.Platform, day time.Time) (int64, error)
	// AppendSale inserts a sale event. When the sale carries an idempotency
	// key already recorded for the member, nothing is written and false is
	// returned.
	AppendSale(ctx context.Context, sale *domain.SaleEvent) (bool, error)
}

// AnalyticsRepository provides read-only access to scopes and facts for the
// aggregation engine.
type AnalyticsRepository interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	GetMember(ctx context.Context, id uuid.UUID) (*domain.CampaignMember, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	// ListCampaignsByBrand returns every campaign owned by the brand.
	ListCampaignsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Campaign, error)
	// ListClickFacts returns daily click counters matching the filter.
	ListClickFacts(ctx context.Context, filter FactFilter) ([]ClickFact, error)
	// ListSaleFacts returns sale events matching the filter.
	ListSaleFacts(ctx context.Context, filter FactFilter) ([]SaleFact, error)
}

// BrandRepository stores brand credentials and subscriptions.
type BrandRepository interface {
	GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error)
	FindBrandByAPIKeyHash(ctx context.Context, hash string) (*domain.Brand, error)
	// UpdateAPIKeyHash replaces the brand's key hash.
	UpdateAPIKeyHash(ctx context.Context, brandID uuid.UUID, hash string) error
	// GetSubscription returns the brand's subscription, nil when it never had
	// one.
	GetSubscription(ctx context.Context, brandID uuid.UUID) (*domain.Subscription, error)
	// ClaimFreeTrial grants a trial window unless one was granted before. It
	// returns false when the trial had already been used.
	ClaimFreeTrial(ctx context.Context, brandID uuid.UUID, startedAt, expiresAt time.Time) (bool, error)
	// ExtendSubscription sets the subscription expiry, creating the
	// subscription when absent.
	ExtendSubscription(ctx context.Context, brandID uuid.UUID, startedAt, expiresAt time.Time) error
}

// CampaignRepository stores campaigns and the membership graph around them.
type CampaignRepository interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CreateCampaign inserts a campaign with its flat payout terms.
	CreateCampaign(ctx context.Context, c *domain.Campaign, terms domain.PayoutTerms) error
	// StartCampaign moves a DRAFT campaign to ACTIVE. It returns false when
	// the campaign had already been started.
	StartCampaign(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	// CompleteCampaign moves an ACTIVE campaign to COMPLETED. It returns
	// false when the campaign was not active.
	CompleteCampaign(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// AttachProduct links a product to a campaign; linking twice is a no-op.
	AttachProduct(ctx context.Context, link *domain.CampaignProduct) error
	GetMember(ctx context.Context, id uuid.UUID) (*domain.CampaignMember, error)
	GetInvite(ctx context.Context, id uuid.UUID) (*domain.CampaignInvite, error)
	// AcceptInvite marks the invite accepted and creates the member in one
	// transaction. It returns domain.ErrInviteAccepted when the invite was
	// accepted concurrently.
	AcceptInvite(ctx context.Context, inviteID uuid.UUID, member *domain.CampaignMember) error
	// CreateReferralCode inserts a code. A duplicate code value yields
	// domain.ErrCodeTaken.
	CreateReferralCode(ctx context.Context, code *domain.ReferralCode) error
}
