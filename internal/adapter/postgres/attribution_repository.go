package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorlink/internal/core/domain"
)

// AttributionRepository implements port.AttributionRepository using
// pgxpool for PostgreSQL.
type AttributionRepository struct {
	lookup
}

// NewAttributionRepository returns a new repository instance.
func NewAttributionRepository(pool *pgxpool.Pool) *AttributionRepository {
	return &AttributionRepository{lookup{pool: pool}}
}

// FindReferralCode returns the referral code with the given value.
func (r *AttributionRepository) FindReferralCode(ctx context.Context, code string) (*domain.ReferralCode, error) {
	var rc domain.ReferralCode
	err := r.pool.QueryRow(ctx, `SELECT id, code, member_id, platform, created_at FROM referral_codes WHERE code = $1`, code).
		Scan(&rc.ID, &rc.Code, &rc.MemberID, &rc.Platform, &rc.CreatedAt)
	return noRows(&rc, err)
}

// FindProductBySKU returns the brand's product with the given SKU.
func (r *AttributionRepository) FindProductBySKU(ctx context.Context, brandID uuid.UUID, sku string) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `
        SELECT id, brand_id, sku_id, name, base_price, status, product_url, created_at
        FROM products
        WHERE brand_id = $1 AND sku_id = $2`, brandID, sku).
		Scan(&p.ID, &p.BrandID, &p.SKU, &p.Name, &p.BasePrice, &p.Status, &p.ProductURL, &p.CreatedAt)
	return noRows(&p, err)
}

// FindCampaignProduct returns the campaign/product link.
func (r *AttributionRepository) FindCampaignProduct(ctx context.Context, productID, campaignID uuid.UUID) (*domain.CampaignProduct, error) {
	var cp domain.CampaignProduct
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, product_id FROM campaign_products WHERE product_id = $1 AND campaign_id = $2`, productID, campaignID).
		Scan(&cp.ID, &cp.CampaignID, &cp.ProductID)
	return noRows(&cp, err)
}

// IncrementClick adds one to the daily counter in a single statement. The
// unique key on (member_id, platform, day) turns concurrent first clicks
// into one insert and increments, so no update is lost.
func (r *AttributionRepository) IncrementClick(ctx context.Context, memberID uuid.UUID, platform domain.Platform, day time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
        INSERT INTO click_events (id, member_id, platform, day, count)
        VALUES ($1, $2, $3, $4, 1)
        ON CONFLICT ON CONSTRAINT click_events_member_platform_day_key
        DO UPDATE SET count = click_events.count + 1
        RETURNING count`,
		uuid.New(), memberID, platform, day).Scan(&count)
	return count, err
}

// AppendSale inserts a sale event. Sales without an idempotency key are
// always inserted; a key already seen for the member inserts nothing.
func (r *AttributionRepository) AppendSale(ctx context.Context, sale *domain.SaleEvent) (bool, error) {
	var key *string
	if sale.IdempotencyKey != "" {
		key = &sale.IdempotencyKey
	}
	tag, err := r.pool.Exec(ctx, `
        INSERT INTO sale_events (id, member_id, campaign_product_id, platform, sale_price, purchased_at, idempotency_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT ON CONSTRAINT sale_events_member_idempotency_key DO NOTHING`,
		sale.ID, sale.MemberID, sale.CampaignProductID, sale.Platform, sale.SalePrice, sale.PurchasedAt, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
