package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorlink/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	lookup
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{lookup{pool: pool}}
}

// CreateCampaign inserts a campaign with its flat payout terms.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign, terms domain.PayoutTerms) error {
	commission := terms.Commission
	if commission == "" {
		commission = domain.CommissionPercentage
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns (id, brand_id, name, status, payout_model, cps_commission_type, cps_value, cpc_value, redirect_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.BrandID, c.Name, c.Status, terms.Kind, commission, terms.CPSValue, terms.CPCValue, c.RedirectURL, c.CreatedAt)
	return err
}

// StartCampaign activates a campaign that has never been started.
func (r *CampaignRepository) StartCampaign(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = 'ACTIVE', started_at = $2
        WHERE id = $1 AND status = 'DRAFT' AND started_at IS NULL`, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CompleteCampaign completes an active campaign.
func (r *CampaignRepository) CompleteCampaign(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns SET status = 'COMPLETED', completed_at = $2
        WHERE id = $1 AND status = 'ACTIVE'`, id, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// GetProduct returns a product by id.
func (r *CampaignRepository) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `
        SELECT id, brand_id, sku_id, name, base_price, status, product_url, created_at
        FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.BrandID, &p.SKU, &p.Name, &p.BasePrice, &p.Status, &p.ProductURL, &p.CreatedAt)
	return noRows(&p, err)
}

// AttachProduct links a product to a campaign. When the link already
// exists its id is written back into link.
func (r *CampaignRepository) AttachProduct(ctx context.Context, link *domain.CampaignProduct) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO campaign_products (id, campaign_id, product_id)
        VALUES ($1, $2, $3)
        ON CONFLICT ON CONSTRAINT campaign_products_campaign_product_key
        DO UPDATE SET campaign_id = EXCLUDED.campaign_id
        RETURNING id`,
		link.ID, link.CampaignID, link.ProductID).Scan(&link.ID)
}

// GetInvite returns an invite by id.
func (r *CampaignRepository) GetInvite(ctx context.Context, id uuid.UUID) (*domain.CampaignInvite, error) {
	var inv domain.CampaignInvite
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, email, status, created_at FROM campaign_invites WHERE id = $1`, id).
		Scan(&inv.ID, &inv.CampaignID, &inv.Email, &inv.Status, &inv.CreatedAt)
	return noRows(&inv, err)
}

// AcceptInvite flips the invite to ACCEPTED and inserts the member in one
// transaction.
func (r *CampaignRepository) AcceptInvite(ctx context.Context, inviteID uuid.UUID, member *domain.CampaignMember) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(ctx, `UPDATE campaign_invites SET status = 'ACCEPTED' WHERE id = $1 AND status = 'PENDING'`, inviteID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = domain.ErrInviteAccepted
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaign_members (id, campaign_id, creator_id, created_at) VALUES ($1, $2, $3, $4)`,
		member.ID, member.CampaignID, member.CreatorID, member.CreatedAt)
	if isUniqueViolation(err, "campaign_members_campaign_creator_key") {
		err = domain.ErrInviteAccepted
	}
	return err
}

// CreateReferralCode inserts a referral code. A taken code value maps to
// domain.ErrCodeTaken so the caller can draw again.
func (r *CampaignRepository) CreateReferralCode(ctx context.Context, code *domain.ReferralCode) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO referral_codes (id, code, member_id, platform, created_at) VALUES ($1, $2, $3, $4, $5)`,
		code.ID, code.Code, code.MemberID, code.Platform, code.CreatedAt)
	if isUniqueViolation(err, "referral_codes_code_key") {
		return domain.ErrCodeTaken
	}
	return err
}
