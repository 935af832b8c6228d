package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
)

const uniqueViolation = "23505"

const campaignColumns = `c.id, c.brand_id, c.name, c.status, c.payout_model, c.cps_commission_type,
	c.cps_value, c.cpc_value, c.redirect_url, c.started_at, c.completed_at, c.created_at`

// scanCampaign reads campaignColumns from row.
func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                  domain.Campaign
		terms              domain.PayoutTerms
		cpsValue, cpcValue decimal.Decimal
	)
	err := row.Scan(
		&c.ID,
		&c.BrandID,
		&c.Name,
		&c.Status,
		&terms.Kind,
		&terms.Commission,
		&cpsValue,
		&cpcValue,
		&c.RedirectURL,
		&c.StartedAt,
		&c.CompletedAt,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	terms.CPSValue, terms.CPCValue = cpsValue, cpcValue
	if c.Payout, err = terms.Model(); err != nil {
		return nil, err
	}
	return &c, nil
}

// noRows turns pgx.ErrNoRows into the (nil, nil) not-found convention.
func noRows[T any](v *T, err error) (*T, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
