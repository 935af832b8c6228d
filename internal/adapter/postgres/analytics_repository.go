package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

// AnalyticsRepository implements port.AnalyticsRepository. It only reads.
type AnalyticsRepository struct {
	lookup
}

// NewAnalyticsRepository returns a new repository instance.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{lookup{pool: pool}}
}

// ListCampaignsByBrand returns the brand's campaigns, oldest first.
func (r *AnalyticsRepository) ListCampaignsByBrand(ctx context.Context, brandID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.brand_id = $1 ORDER BY c.created_at, c.id`, brandID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// ListClickFacts returns daily counters joined with their membership.
func (r *AnalyticsRepository) ListClickFacts(ctx context.Context, f port.FactFilter) ([]port.ClickFact, error) {
	where, args, err := scopeClause(f, "ce.day")
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        SELECT m.campaign_id, ce.member_id, m.creator_id, ce.platform, ce.day, ce.count
        FROM click_events ce
        JOIN campaign_members m ON m.id = ce.member_id
        JOIN campaigns c ON c.id = m.campaign_id
        WHERE %s
        ORDER BY ce.day, ce.member_id, ce.platform`, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ClickFact, error) {
		var c port.ClickFact
		err := row.Scan(&c.CampaignID, &c.MemberID, &c.CreatorID, &c.Platform, &c.Day, &c.Count)
		return c, err
	})
}

// ListSaleFacts returns sale events joined with membership and product.
func (r *AnalyticsRepository) ListSaleFacts(ctx context.Context, f port.FactFilter) ([]port.SaleFact, error) {
	where, args, err := scopeClause(f, "(se.purchased_at AT TIME ZONE 'UTC')::date")
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        SELECT m.campaign_id, se.member_id, m.creator_id, p.id, p.sku_id, se.platform, se.sale_price, se.purchased_at
        FROM sale_events se
        JOIN campaign_members m ON m.id = se.member_id
        JOIN campaigns c ON c.id = m.campaign_id
        JOIN campaign_products cp ON cp.id = se.campaign_product_id
        JOIN products p ON p.id = cp.product_id
        WHERE %s
        ORDER BY se.purchased_at, se.id`, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SaleFact, error) {
		var s port.SaleFact
		err := row.Scan(&s.CampaignID, &s.MemberID, &s.CreatorID, &s.ProductID, &s.SKU, &s.Platform, &s.SalePrice, &s.PurchasedAt)
		return s, err
	})
}

// scopeClause builds the WHERE clause for a fact filter. dateExpr is the
// date-valued column the range applies to; the range is inclusive on both
// ends.
func scopeClause(f port.FactFilter, dateExpr string) (string, []any, error) {
	var where string
	switch f.Scope {
	case port.ScopeCampaign:
		where = "m.campaign_id = $1"
	case port.ScopeMember:
		where = "m.id = $1"
	case port.ScopeBrand:
		where = "c.brand_id = $1"
	default:
		return "", nil, fmt.Errorf("%w: scope %q", domain.ErrInvalidInput, f.Scope)
	}
	args := []any{f.ID}
	if f.From != nil {
		args = append(args, domain.DayBucket(*f.From))
		where += fmt.Sprintf(" AND %s >= $%d", dateExpr, len(args))
	}
	if f.To != nil {
		args = append(args, domain.DayBucket(*f.To))
		where += fmt.Sprintf(" AND %s <= $%d", dateExpr, len(args))
	}
	return where, args, nil
}
