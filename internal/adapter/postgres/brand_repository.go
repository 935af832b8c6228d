package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorlink/internal/core/domain"
)

// BrandRepository implements port.BrandRepository.
type BrandRepository struct {
	lookup
}

// NewBrandRepository returns a new repository instance.
func NewBrandRepository(pool *pgxpool.Pool) *BrandRepository {
	return &BrandRepository{lookup{pool: pool}}
}

// UpdateAPIKeyHash replaces the brand's key hash.
func (r *BrandRepository) UpdateAPIKeyHash(ctx context.Context, brandID uuid.UUID, hash string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE brands SET api_key_hash = $1 WHERE id = $2`, hash, brandID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetSubscription returns the brand's subscription.
func (r *BrandRepository) GetSubscription(ctx context.Context, brandID uuid.UUID) (*domain.Subscription, error) {
	var s domain.Subscription
	err := r.pool.QueryRow(ctx, `SELECT brand_id, started_at, expires_at, used_free_trial FROM brand_subscriptions WHERE brand_id = $1`, brandID).
		Scan(&s.BrandID, &s.StartedAt, &s.ExpiresAt, &s.UsedFreeTrial)
	return noRows(&s, err)
}

// ClaimFreeTrial grants a trial in one statement. The conflict branch only
// fires for a brand that has never used its trial, so a second claim
// affects no rows.
func (r *BrandRepository) ClaimFreeTrial(ctx context.Context, brandID uuid.UUID, startedAt, expiresAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        INSERT INTO brand_subscriptions (brand_id, started_at, expires_at, used_free_trial)
        VALUES ($1, $2, $3, true)
        ON CONFLICT (brand_id) DO UPDATE
            SET started_at = EXCLUDED.started_at,
                expires_at = GREATEST(brand_subscriptions.expires_at, EXCLUDED.expires_at),
                used_free_trial = true
            WHERE brand_subscriptions.used_free_trial = false`,
		brandID, startedAt, expiresAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ExtendSubscription upserts the subscription window, keeping the trial
// flag.
func (r *BrandRepository) ExtendSubscription(ctx context.Context, brandID uuid.UUID, startedAt, expiresAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO brand_subscriptions (brand_id, started_at, expires_at, used_free_trial)
        VALUES ($1, $2, $3, false)
        ON CONFLICT (brand_id) DO UPDATE
            SET started_at = EXCLUDED.started_at,
                expires_at = EXCLUDED.expires_at`,
		brandID, startedAt, expiresAt)
	return err
}
