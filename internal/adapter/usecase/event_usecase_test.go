package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
	"creatorlink/internal/core/port/mocks"
)

// referralChain is a code -> member -> campaign fixture.
type referralChain struct {
	code     domain.ReferralCode
	member   domain.CampaignMember
	campaign domain.Campaign
}

func newReferralChain(status domain.CampaignStatus) referralChain {
	campaign := domain.Campaign{
		ID:          uuid.New(),
		BrandID:     uuid.New(),
		Status:      status,
		Payout:      domain.CPC{Value: decimal.NewFromInt(5)},
		RedirectURL: "https://shop.example.com/landing",
	}
	member := domain.CampaignMember{ID: uuid.New(), CampaignID: campaign.ID, CreatorID: uuid.New()}
	code := domain.ReferralCode{ID: uuid.New(), Code: "12345", MemberID: member.ID, Platform: domain.PlatformInstagram}
	return referralChain{code: code, member: member, campaign: campaign}
}

func (c referralChain) expectResolve(repo *mocks.MockAttributionRepository) {
	repo.EXPECT().FindReferralCode(mock.Anything, c.code.Code).Return(&c.code, nil)
	repo.EXPECT().GetMember(mock.Anything, c.member.ID).Return(&c.member, nil)
	repo.EXPECT().GetCampaign(mock.Anything, c.campaign.ID).Return(&c.campaign, nil)
}

func TestRecordClickCountsAndRedirects(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	chain := newReferralChain(domain.CampaignStatusActive)
	chain.expectResolve(repo)

	now := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	repo.EXPECT().
		IncrementClick(mock.Anything, chain.member.ID, domain.PlatformInstagram, domain.DayBucket(now)).
		Return(1, nil)

	u := NewEventUseCase(repo)
	u.now = func() time.Time { return now }

	redirect, err := u.RecordClick(context.Background(), " 12345 ")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/landing", redirect)
}

func TestRecordClickRejections(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		_, err := NewEventUseCase(repo).RecordClick(context.Background(), "  ")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown code", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		repo.EXPECT().FindReferralCode(mock.Anything, "99999").Return(nil, nil)
		_, err := NewEventUseCase(repo).RecordClick(context.Background(), "99999")
		require.ErrorIs(t, err, domain.ErrReferralNotFound)
	})

	t.Run("orphaned member", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		chain := newReferralChain(domain.CampaignStatusActive)
		repo.EXPECT().FindReferralCode(mock.Anything, chain.code.Code).Return(&chain.code, nil)
		repo.EXPECT().GetMember(mock.Anything, chain.member.ID).Return(nil, nil)
		_, err := NewEventUseCase(repo).RecordClick(context.Background(), chain.code.Code)
		require.ErrorIs(t, err, domain.ErrInvalidMember)
	})

	for _, status := range []domain.CampaignStatus{domain.CampaignStatusDraft, domain.CampaignStatusCompleted} {
		t.Run(string(status)+" campaign", func(t *testing.T) {
			repo := mocks.NewMockAttributionRepository(t)
			chain := newReferralChain(status)
			chain.expectResolve(repo)
			_, err := NewEventUseCase(repo).RecordClick(context.Background(), chain.code.Code)
			require.ErrorIs(t, err, domain.ErrCampaignInactive)
			repo.AssertNotCalled(t, "IncrementClick", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		chain := newReferralChain(domain.CampaignStatusActive)
		chain.expectResolve(repo)
		boom := errors.New("connection reset")
		repo.EXPECT().IncrementClick(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, boom)
		_, err := NewEventUseCase(repo).RecordClick(context.Background(), chain.code.Code)
		require.ErrorIs(t, err, boom)
	})
}

// TestConcurrentClicksShareOneCounter fires clicks in parallel and checks
// they all land on the same (member, platform, day) counter without loss.
func TestConcurrentClicksShareOneCounter(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	chain := newReferralChain(domain.CampaignStatusActive)
	chain.expectResolve(repo)

	type key struct {
		member   uuid.UUID
		platform domain.Platform
		day      time.Time
	}
	var (
		mu       sync.Mutex
		counters = map[key]int64{}
	)
	repo.EXPECT().
		IncrementClick(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, member uuid.UUID, platform domain.Platform, day time.Time) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			k := key{member, platform, day}
			counters[k]++
			return counters[k], nil
		})

	u := NewEventUseCase(repo)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	u.now = func() time.Time { return now }

	const clicks = 50
	var wg sync.WaitGroup
	wg.Add(clicks)
	for i := 0; i < clicks; i++ {
		go func() {
			defer wg.Done()
			_, err := u.RecordClick(context.Background(), chain.code.Code)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Len(t, counters, 1)
	assert.Equal(t, int64(clicks), counters[key{chain.member.ID, domain.PlatformInstagram, domain.DayBucket(now)}])
}

// TestClickDayBoundary checks that clicks either side of UTC midnight go
// to different counters.
func TestClickDayBoundary(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	chain := newReferralChain(domain.CampaignStatusActive)
	chain.expectResolve(repo)

	var days []time.Time
	repo.EXPECT().
		IncrementClick(mock.Anything, chain.member.ID, domain.PlatformInstagram, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _ domain.Platform, day time.Time) {
			days = append(days, day)
		}).
		Return(1, nil)

	u := NewEventUseCase(repo)
	times := []time.Time{
		time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 3, 11, 0, 0, 1, 0, time.UTC),
	}
	for _, at := range times {
		u.now = func() time.Time { return at }
		_, err := u.RecordClick(context.Background(), chain.code.Code)
		require.NoError(t, err)
	}

	require.Len(t, days, 2)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), days[1])
}

// saleFixture authenticates a brand that owns one product attached to the
// chain's campaign.
type saleFixture struct {
	chain   referralChain
	brand   domain.Brand
	product domain.Product
	link    domain.CampaignProduct
	apiKey  string
}

func newSaleFixture(status domain.CampaignStatus) saleFixture {
	chain := newReferralChain(status)
	brand := domain.Brand{ID: chain.campaign.BrandID, Name: "Acme"}
	product := domain.Product{ID: uuid.New(), BrandID: brand.ID, SKU: "SKU-1"}
	return saleFixture{
		chain:   chain,
		brand:   brand,
		product: product,
		link:    domain.CampaignProduct{ID: uuid.New(), CampaignID: chain.campaign.ID, ProductID: product.ID},
		apiKey:  "ck_test",
	}
}

func (f saleFixture) input(price string) port.SaleInput {
	p := decimal.RequireFromString(price)
	return port.SaleInput{APIKey: f.apiKey, ReferralCode: f.chain.code.Code, SKU: f.product.SKU, SalePrice: &p}
}

func (f saleFixture) expectAuth(repo *mocks.MockAttributionRepository) {
	repo.EXPECT().FindBrandByAPIKeyHash(mock.Anything, HashAPIKey(f.apiKey)).Return(&f.brand, nil)
}

func TestRecordSaleAppendsOnCompletedCampaign(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	f := newSaleFixture(domain.CampaignStatusCompleted)
	f.expectAuth(repo)
	f.chain.expectResolve(repo)
	repo.EXPECT().FindProductBySKU(mock.Anything, f.brand.ID, "SKU-1").Return(&f.product, nil)
	repo.EXPECT().FindCampaignProduct(mock.Anything, f.product.ID, f.chain.campaign.ID).Return(&f.link, nil)

	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	repo.EXPECT().
		AppendSale(mock.Anything, mock.MatchedBy(func(s *domain.SaleEvent) bool {
			return s.MemberID == f.chain.member.ID &&
				s.CampaignProductID == f.link.ID &&
				s.Platform == domain.PlatformInstagram &&
				s.SalePrice.Equal(decimal.RequireFromString("49.90")) &&
				s.PurchasedAt.Equal(now) &&
				s.IdempotencyKey == "order-7"
		})).
		Return(true, nil)

	u := NewEventUseCase(repo)
	u.now = func() time.Time { return now }

	in := f.input("49.90")
	in.IdempotencyKey = "order-7"
	require.NoError(t, u.RecordSale(context.Background(), in))
}

func TestRecordSaleDuplicateKeyIsAccepted(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	f := newSaleFixture(domain.CampaignStatusActive)
	f.expectAuth(repo)
	f.chain.expectResolve(repo)
	repo.EXPECT().FindProductBySKU(mock.Anything, f.brand.ID, "SKU-1").Return(&f.product, nil)
	repo.EXPECT().FindCampaignProduct(mock.Anything, f.product.ID, f.chain.campaign.ID).Return(&f.link, nil)
	repo.EXPECT().AppendSale(mock.Anything, mock.Anything).Return(false, nil)

	in := f.input("10")
	in.IdempotencyKey = "order-7"
	require.NoError(t, NewEventUseCase(repo).RecordSale(context.Background(), in))
}

func TestRecordSalePriceBounds(t *testing.T) {
	for _, price := range []string{"0.01", "12.50", "1.500", "999999999999.99"} {
		t.Run(price, func(t *testing.T) {
			repo := mocks.NewMockAttributionRepository(t)
			f := newSaleFixture(domain.CampaignStatusActive)
			f.expectAuth(repo)
			f.chain.expectResolve(repo)
			repo.EXPECT().FindProductBySKU(mock.Anything, f.brand.ID, "SKU-1").Return(&f.product, nil)
			repo.EXPECT().FindCampaignProduct(mock.Anything, f.product.ID, f.chain.campaign.ID).Return(&f.link, nil)
			repo.EXPECT().AppendSale(mock.Anything, mock.Anything).Return(true, nil)
			require.NoError(t, NewEventUseCase(repo).RecordSale(context.Background(), f.input(price)))
		})
	}
}

func TestRecordSaleTrimsAPIKey(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	f := newSaleFixture(domain.CampaignStatusActive)
	f.expectAuth(repo)
	f.chain.expectResolve(repo)
	repo.EXPECT().FindProductBySKU(mock.Anything, f.brand.ID, "SKU-1").Return(&f.product, nil)
	repo.EXPECT().FindCampaignProduct(mock.Anything, f.product.ID, f.chain.campaign.ID).Return(&f.link, nil)
	repo.EXPECT().AppendSale(mock.Anything, mock.Anything).Return(true, nil)

	in := f.input("10")
	in.APIKey = "  " + f.apiKey + "\t"
	require.NoError(t, NewEventUseCase(repo).RecordSale(context.Background(), in))
}

func TestRecordSaleCheckOrder(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		f := newSaleFixture(domain.CampaignStatusActive)
		in := f.input("10")
		in.APIKey = ""
		require.ErrorIs(t, NewEventUseCase(repo).RecordSale(context.Background(), in), domain.ErrUnauthorized)
	})

	t.Run("unknown key before bad input", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		repo.EXPECT().FindBrandByAPIKeyHash(mock.Anything, mock.Anything).Return(nil, nil)
		err := NewEventUseCase(repo).RecordSale(context.Background(), port.SaleInput{APIKey: "ck_wrong"})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	badInputs := map[string]func(*port.SaleInput){
		"missing code":    func(in *port.SaleInput) { in.ReferralCode = "" },
		"missing sku":     func(in *port.SaleInput) { in.SKU = " " },
		"missing price":   func(in *port.SaleInput) { in.SalePrice = nil },
		"zero price":      func(in *port.SaleInput) { z := decimal.Zero; in.SalePrice = &z },
		"negative price":  func(in *port.SaleInput) { n := decimal.NewFromInt(-3); in.SalePrice = &n },
		"sub-cent price":  func(in *port.SaleInput) { p := decimal.RequireFromString("0.004"); in.SalePrice = &p },
		"three decimals":  func(in *port.SaleInput) { p := decimal.RequireFromString("49.999"); in.SalePrice = &p },
		"price too large": func(in *port.SaleInput) { p := decimal.New(1, 12); in.SalePrice = &p },
	}
	for name, mutate := range badInputs {
		t.Run(name, func(t *testing.T) {
			repo := mocks.NewMockAttributionRepository(t)
			f := newSaleFixture(domain.CampaignStatusActive)
			f.expectAuth(repo)
			in := f.input("10")
			mutate(&in)
			require.ErrorIs(t, NewEventUseCase(repo).RecordSale(context.Background(), in), domain.ErrInvalidInput)
		})
	}

	t.Run("unknown referral code", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		f := newSaleFixture(domain.CampaignStatusActive)
		f.expectAuth(repo)
		repo.EXPECT().FindReferralCode(mock.Anything, f.chain.code.Code).Return(nil, nil)
		require.ErrorIs(t, NewEventUseCase(repo).RecordSale(context.Background(), f.input("10")), domain.ErrReferralNotFound)
	})

	t.Run("product of another brand", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		f := newSaleFixture(domain.CampaignStatusActive)
		f.expectAuth(repo)
		f.chain.expectResolve(repo)
		repo.EXPECT().FindProductBySKU(mock.Anything, f.brand.ID, "SKU-1").Return(nil, nil)
		require.ErrorIs(t, NewEventUseCase(repo).RecordSale(context.Background(), f.input("10")), domain.ErrProductNotFound)
	})

	t.Run("product not attached", func(t *testing.T) {
		repo := mocks.NewMockAttributionRepository(t)
		f := newSaleFixture(domain.CampaignStatusActive)
		f.expectAuth(repo)
		f.chain.expectResolve(repo)
		repo.EXPECT().FindProductBySKU(mock.Anything, f.brand.ID, "SKU-1").Return(&f.product, nil)
		repo.EXPECT().FindCampaignProduct(mock.Anything, f.product.ID, f.chain.campaign.ID).Return(nil, nil)
		require.ErrorIs(t, NewEventUseCase(repo).RecordSale(context.Background(), f.input("10")), domain.ErrProductNotInCampaign)
		repo.AssertNotCalled(t, "AppendSale", mock.Anything, mock.Anything)
	})
}

func TestReferralRegistryResolve(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	chain := newReferralChain(domain.CampaignStatusDraft)
	chain.expectResolve(repo)

	ref, err := NewReferralRegistry(repo).Resolve(context.Background(), chain.code.Code)
	require.NoError(t, err)
	assert.Equal(t, &ResolvedReferral{
		Code:           "12345",
		MemberID:       chain.member.ID,
		CampaignID:     chain.campaign.ID,
		Platform:       domain.PlatformInstagram,
		CampaignStatus: domain.CampaignStatusDraft,
		RedirectURL:    chain.campaign.RedirectURL,
	}, ref)
}

func TestReferralRegistryMissingCampaign(t *testing.T) {
	repo := mocks.NewMockAttributionRepository(t)
	chain := newReferralChain(domain.CampaignStatusActive)
	repo.EXPECT().FindReferralCode(mock.Anything, chain.code.Code).Return(&chain.code, nil)
	repo.EXPECT().GetMember(mock.Anything, chain.member.ID).Return(&chain.member, nil)
	repo.EXPECT().GetCampaign(mock.Anything, chain.campaign.ID).Return(nil, nil)

	_, err := NewReferralRegistry(repo).Resolve(context.Background(), chain.code.Code)
	require.ErrorIs(t, err, domain.ErrInvalidMember)
}

func TestGenerateCodeIsFiveDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateCode()
		require.Len(t, code, 5)
		require.GreaterOrEqual(t, code, "10000")
		require.LessOrEqual(t, code, "99999")
	}
}
