package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorlink/internal/config/configs"
	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
	"creatorlink/internal/db"
)

// testPool connects to PSQL_TEST_ADDRESS and migrates it. Tests using it are
// skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	require.NoError(t, db.Migrate(addr))

	u, err := url.Parse(addr)
	require.NoError(t, err)
	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u, MaxConns: 8})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// fixture is one brand with an active campaign, a member with a referral
// code and an attached product.
type fixture struct {
	brandID    uuid.UUID
	campaignID uuid.UUID
	memberID   uuid.UUID
	productID  uuid.UUID
	linkID     uuid.UUID
	code       string
}

func insertFixture(t *testing.T, pool *pgxpool.Pool) fixture {
	t.Helper()
	ctx := context.Background()
	f := fixture{
		brandID:    uuid.New(),
		campaignID: uuid.New(),
		memberID:   uuid.New(),
		productID:  uuid.New(),
		linkID:     uuid.New(),
		code:       uuid.NewString()[:8],
	}
	stmts := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO brands (id, name, api_key_hash) VALUES ($1, 'Acme', $2)`, []any{f.brandID, uuid.NewString()}},
		{`INSERT INTO campaigns (id, brand_id, name, status, payout_model, cpc_value, redirect_url, started_at)
          VALUES ($1, $2, 'Spring', 'ACTIVE', 'CPC', 5, 'https://shop.example.com', now())`, []any{f.campaignID, f.brandID}},
		{`INSERT INTO campaign_members (id, campaign_id, creator_id) VALUES ($1, $2, $3)`, []any{f.memberID, f.campaignID, uuid.New()}},
		{`INSERT INTO referral_codes (id, code, member_id, platform) VALUES ($1, $2, $3, 'INSTAGRAM')`, []any{uuid.New(), f.code, f.memberID}},
		{`INSERT INTO products (id, brand_id, sku_id, base_price) VALUES ($1, $2, 'SKU-1', 20)`, []any{f.productID, f.brandID}},
		{`INSERT INTO campaign_products (id, campaign_id, product_id) VALUES ($1, $2, $3)`, []any{f.linkID, f.campaignID, f.productID}},
	}
	for _, s := range stmts {
		_, err := pool.Exec(ctx, s.sql, s.args...)
		require.NoError(t, err)
	}
	return f
}

func TestIncrementClickIsAtomic(t *testing.T) {
	pool := testPool(t)
	f := insertFixture(t, pool)
	repo := NewAttributionRepository(pool)
	day := domain.DayBucket(time.Now())

	const clicks = 40
	var wg sync.WaitGroup
	wg.Add(clicks)
	for i := 0; i < clicks; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.IncrementClick(context.Background(), f.memberID, domain.PlatformInstagram, day)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var rows, count int64
	err := pool.QueryRow(context.Background(),
		`SELECT count(*), sum(count) FROM click_events WHERE member_id = $1`, f.memberID).Scan(&rows, &count)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Equal(t, int64(clicks), count)

	next, err := repo.IncrementClick(context.Background(), f.memberID, domain.PlatformInstagram, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)
}

func TestAttributionLookups(t *testing.T) {
	pool := testPool(t)
	f := insertFixture(t, pool)
	repo := NewAttributionRepository(pool)
	ctx := context.Background()

	rc, err := repo.FindReferralCode(ctx, f.code)
	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.Equal(t, f.memberID, rc.MemberID)
	assert.Equal(t, domain.PlatformInstagram, rc.Platform)

	missing, err := repo.FindReferralCode(ctx, "nope-"+f.code)
	require.NoError(t, err)
	assert.Nil(t, missing)

	c, err := repo.GetCampaign(ctx, f.campaignID)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, domain.CPC{Value: decimal.NewFromInt(5)}.Kind(), c.Payout.Kind())
	assert.NotNil(t, c.StartedAt)

	p, err := repo.FindProductBySKU(ctx, f.brandID, "SKU-1")
	require.NoError(t, err)
	require.NotNil(t, p)

	other, err := repo.FindProductBySKU(ctx, uuid.New(), "SKU-1")
	require.NoError(t, err)
	assert.Nil(t, other)

	link, err := repo.FindCampaignProduct(ctx, f.productID, f.campaignID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, f.linkID, link.ID)
}

func TestAppendSaleIdempotencyKey(t *testing.T) {
	pool := testPool(t)
	f := insertFixture(t, pool)
	repo := NewAttributionRepository(pool)
	ctx := context.Background()

	sale := func(key string) *domain.SaleEvent {
		return &domain.SaleEvent{
			ID:                uuid.New(),
			MemberID:          f.memberID,
			CampaignProductID: f.linkID,
			Platform:          domain.PlatformInstagram,
			SalePrice:         decimal.RequireFromString("19.99"),
			PurchasedAt:       time.Now().UTC(),
			IdempotencyKey:    key,
		}
	}

	inserted, err := repo.AppendSale(ctx, sale("order-1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.AppendSale(ctx, sale("order-1"))
	require.NoError(t, err)
	assert.False(t, inserted)

	for i := 0; i < 2; i++ {
		inserted, err = repo.AppendSale(ctx, sale(""))
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	facts, err := NewAnalyticsRepository(pool).ListSaleFacts(ctx, port.FactFilter{Scope: port.ScopeCampaign, ID: f.campaignID})
	require.NoError(t, err)
	require.Len(t, facts, 3)
	assert.Equal(t, "SKU-1", facts[0].SKU)
	assert.Equal(t, f.productID, facts[0].ProductID)
	assert.True(t, facts[0].SalePrice.Equal(decimal.RequireFromString("19.99")))
}

func TestListClickFactsDateRange(t *testing.T) {
	pool := testPool(t)
	f := insertFixture(t, pool)
	repo := NewAttributionRepository(pool)
	ctx := context.Background()

	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	d3 := d1.AddDate(0, 0, 2)
	for _, d := range []time.Time{d1, d2, d2, d3} {
		_, err := repo.IncrementClick(ctx, f.memberID, domain.PlatformInstagram, d)
		require.NoError(t, err)
	}

	facts, err := NewAnalyticsRepository(pool).ListClickFacts(ctx, port.FactFilter{
		Scope: port.ScopeBrand,
		ID:    f.brandID,
		From:  &d2,
		To:    &d3,
	})
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, int64(2), facts[0].Count)
	assert.True(t, facts[0].Day.Equal(d2))
	assert.Equal(t, f.campaignID, facts[0].CampaignID)
}

func TestClaimFreeTrialOnce(t *testing.T) {
	pool := testPool(t)
	f := insertFixture(t, pool)
	repo := NewBrandRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	ok, err := repo.ClaimFreeTrial(ctx, f.brandID, now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ClaimFreeTrial(ctx, f.brandID, now, now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.ExtendSubscription(ctx, f.brandID, now, now.Add(48*time.Hour)))
	sub, err := repo.GetSubscription(ctx, f.brandID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.True(t, sub.UsedFreeTrial)
	assert.True(t, sub.ExpiresAt.Equal(now.Add(48*time.Hour)))
}

func TestCampaignRepository(t *testing.T) {
	pool := testPool(t)
	f := insertFixture(t, pool)
	repo := NewCampaignRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	c := &domain.Campaign{ID: uuid.New(), BrandID: f.brandID, Name: "Draft", Status: domain.CampaignStatusDraft, RedirectURL: "https://x.example.com", CreatedAt: now}
	terms := domain.PayoutTerms{Kind: domain.PayoutBoth, Commission: domain.CommissionFixed, CPSValue: decimal.NewFromInt(3), CPCValue: decimal.RequireFromString("0.5")}
	require.NoError(t, repo.CreateCampaign(ctx, c, terms))

	started, err := repo.StartCampaign(ctx, c.ID, now)
	require.NoError(t, err)
	assert.True(t, started)
	started, err = repo.StartCampaign(ctx, c.ID, now)
	require.NoError(t, err)
	assert.False(t, started)

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	both, ok := got.Payout.(domain.Both)
	require.True(t, ok)
	assert.True(t, both.CPC.Value.Equal(decimal.RequireFromString("0.5")))

	link := &domain.CampaignProduct{ID: uuid.New(), CampaignID: c.ID, ProductID: f.productID}
	require.NoError(t, repo.AttachProduct(ctx, link))
	again := &domain.CampaignProduct{ID: uuid.New(), CampaignID: c.ID, ProductID: f.productID}
	require.NoError(t, repo.AttachProduct(ctx, again))
	assert.Equal(t, link.ID, again.ID)

	err = repo.CreateReferralCode(ctx, &domain.ReferralCode{ID: uuid.New(), Code: f.code, MemberID: f.memberID, Platform: domain.PlatformX, CreatedAt: now})
	require.ErrorIs(t, err, domain.ErrCodeTaken)

	inviteID := uuid.New()
	_, err = pool.Exec(ctx, `INSERT INTO campaign_invites (id, campaign_id, email) VALUES ($1, $2, 'creator@example.com')`, inviteID, c.ID)
	require.NoError(t, err)
	member := &domain.CampaignMember{ID: uuid.New(), CampaignID: c.ID, CreatorID: uuid.New(), CreatedAt: now}
	require.NoError(t, repo.AcceptInvite(ctx, inviteID, member))
	require.ErrorIs(t, repo.AcceptInvite(ctx, inviteID, member), domain.ErrInviteAccepted)

	inv, err := repo.GetInvite(ctx, inviteID)
	require.NoError(t, err)
	assert.Equal(t, domain.InviteStatusAccepted, inv.Status)
}
