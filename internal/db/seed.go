package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
)

// SeedResult reports what Seed created.
type SeedResult struct {
	BrandID     uuid.UUID
	CampaignIDs []uuid.UUID
	Codes       []string
}

// Seed inserts a demo brand with an active subscription, three campaigns
// (one per payout model), five creators per campaign with a referral code
// each, products, and two weeks of clicks and sales. apiKeyHash is stored
// as the brand's credential.
func Seed(ctx context.Context, pool *pgxpool.Pool, apiKeyHash string) (*SeedResult, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()
	res := &SeedResult{BrandID: uuid.New()}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `INSERT INTO brands (id, name, api_key_hash, created_at) VALUES ($1, $2, $3, $4)`,
		res.BrandID, "Demo Brand", apiKeyHash, now); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(ctx, `INSERT INTO brand_subscriptions (brand_id, started_at, expires_at, used_free_trial) VALUES ($1, $2, $3, true)`,
		res.BrandID, now, now.AddDate(0, 1, 0)); err != nil {
		return nil, err
	}

	// products shared by every campaign
	productIDs := make([]uuid.UUID, 0, 4)
	for i := 1; i <= 4; i++ {
		id := uuid.New()
		price := decimal.NewFromInt(int64(20 * i))
		if _, err = tx.Exec(ctx, `
            INSERT INTO products (id, brand_id, sku_id, name, base_price, status, product_url, created_at)
            VALUES ($1, $2, $3, $4, $5, 'AVAILABLE', $6, $7)`,
			id, res.BrandID, fmt.Sprintf("SKU-%03d", i), fmt.Sprintf("Product %d", i), price,
			fmt.Sprintf("https://shop.example.com/p/%d", i), now); err != nil {
			return nil, err
		}
		productIDs = append(productIDs, id)
	}

	terms := []domain.PayoutTerms{
		{Kind: domain.PayoutCPC, Commission: domain.CommissionFixed, CPCValue: decimal.RequireFromString("0.50")},
		{Kind: domain.PayoutCPS, Commission: domain.CommissionPercentage, CPSValue: decimal.NewFromInt(10)},
		{Kind: domain.PayoutBoth, Commission: domain.CommissionFixed, CPSValue: decimal.NewFromInt(5), CPCValue: decimal.RequireFromString("0.25")},
	}
	for i, t := range terms {
		campaignID := uuid.New()
		res.CampaignIDs = append(res.CampaignIDs, campaignID)
		if _, err = tx.Exec(ctx, `
            INSERT INTO campaigns (id, brand_id, name, status, payout_model, cps_commission_type, cps_value, cpc_value, redirect_url, started_at, created_at)
            VALUES ($1, $2, $3, 'ACTIVE', $4, $5, $6, $7, $8, $9, $9)`,
			campaignID, res.BrandID, fmt.Sprintf("Campaign %d (%s)", i+1, t.Kind), t.Kind, t.Commission,
			t.CPSValue, t.CPCValue, "https://shop.example.com/landing", now.AddDate(0, 0, -14)); err != nil {
			return nil, err
		}

		linkIDs := make([]uuid.UUID, 0, len(productIDs))
		for _, pid := range productIDs[:2+i%3] {
			linkID := uuid.New()
			if _, err = tx.Exec(ctx, `INSERT INTO campaign_products (id, campaign_id, product_id) VALUES ($1, $2, $3)`,
				linkID, campaignID, pid); err != nil {
				return nil, err
			}
			linkIDs = append(linkIDs, linkID)
		}

		for c := 0; c < 5; c++ {
			memberID := uuid.New()
			if _, err = tx.Exec(ctx, `INSERT INTO campaign_members (id, campaign_id, creator_id, created_at) VALUES ($1, $2, $3, $4)`,
				memberID, campaignID, uuid.New(), now.AddDate(0, 0, -14)); err != nil {
				return nil, err
			}
			platform := domain.Platforms[r.Intn(len(domain.Platforms))]
			code := fmt.Sprintf("%d", 10000+len(res.Codes)+i*100+c)
			if _, err = tx.Exec(ctx, `INSERT INTO referral_codes (id, code, member_id, platform, created_at) VALUES ($1, $2, $3, $4, $5)`,
				uuid.New(), code, memberID, platform, now.AddDate(0, 0, -14)); err != nil {
				return nil, err
			}
			res.Codes = append(res.Codes, code)

			for d := 0; d < 14; d++ {
				day := domain.DayBucket(now.AddDate(0, 0, -d))
				clicks := r.Intn(40)
				if clicks > 0 {
					if _, err = tx.Exec(ctx, `INSERT INTO click_events (id, member_id, platform, day, count) VALUES ($1, $2, $3, $4, $5)`,
						uuid.New(), memberID, platform, day, clicks); err != nil {
						return nil, err
					}
				}
				for s := 0; s < clicks/15; s++ {
					price := decimal.NewFromInt(int64(15 + r.Intn(120)))
					if _, err = tx.Exec(ctx, `
                        INSERT INTO sale_events (id, member_id, campaign_product_id, platform, sale_price, purchased_at)
                        VALUES ($1, $2, $3, $4, $5, $6)`,
						uuid.New(), memberID, linkIDs[r.Intn(len(linkIDs))], platform, price,
						day.Add(time.Duration(r.Intn(86400))*time.Second)); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return res, nil
}
