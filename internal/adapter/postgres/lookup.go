package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorlink/internal/core/domain"
)

// lookup holds the single-row reads shared by every repository.
type lookup struct {
	pool *pgxpool.Pool
}

// GetCampaign returns a campaign by id.
func (l lookup) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := l.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id)
	return noRows(scanCampaign(row))
}

// GetMember returns a campaign member by id.
func (l lookup) GetMember(ctx context.Context, id uuid.UUID) (*domain.CampaignMember, error) {
	var m domain.CampaignMember
	err := l.pool.QueryRow(ctx, `SELECT id, campaign_id, creator_id, created_at FROM campaign_members WHERE id = $1`, id).
		Scan(&m.ID, &m.CampaignID, &m.CreatorID, &m.CreatedAt)
	return noRows(&m, err)
}

// GetBrand returns a brand by id.
func (l lookup) GetBrand(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	var b domain.Brand
	err := l.pool.QueryRow(ctx, `SELECT id, name, api_key_hash, created_at FROM brands WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.APIKeyHash, &b.CreatedAt)
	return noRows(&b, err)
}

// FindBrandByAPIKeyHash returns the brand holding the key hash.
func (l lookup) FindBrandByAPIKeyHash(ctx context.Context, hash string) (*domain.Brand, error) {
	var b domain.Brand
	err := l.pool.QueryRow(ctx, `SELECT id, name, api_key_hash, created_at FROM brands WHERE api_key_hash = $1`, hash).
		Scan(&b.ID, &b.Name, &b.APIKeyHash, &b.CreatedAt)
	return noRows(&b, err)
}
