package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTopNFoldsTailIntoOther(t *testing.T) {
	revenues := []int64{60, 100, 40, 80, 90, 50, 70}
	entries := make([]port.RankEntry, 0, len(revenues))
	total := decimal.Zero
	for i, r := range revenues {
		total = total.Add(decimal.NewFromInt(r))
		entries = append(entries, port.RankEntry{
			Key:   fmt.Sprintf("creator-%d", i),
			Label: fmt.Sprintf("creator-%d", i),
			Value: decimal.NewFromInt(r),
		})
	}

	got := TopN(entries, 5, OtherLabel)
	require.Len(t, got, 6)

	want := []int64{100, 90, 80, 70, 60}
	for i, v := range want {
		assert.True(t, got[i].Value.Equal(decimal.NewFromInt(v)), "rank %d: %s", i, got[i].Value)
		assert.False(t, got[i].Other)
	}
	other := got[5]
	assert.True(t, other.Other)
	assert.Equal(t, OtherLabel, other.Label)
	assert.True(t, other.Value.Equal(decimal.NewFromInt(90)), "other: %s", other.Value)

	sum := decimal.Zero
	for _, e := range got {
		sum = sum.Add(e.Value)
	}
	assert.True(t, sum.Equal(total), "sum: %s", sum)
	assert.True(t, sum.Equal(decimal.NewFromInt(490)), "sum: %s", sum)
}

func TestTopNShortListAndTies(t *testing.T) {
	entries := []port.RankEntry{
		{Key: "b", Value: decimal.NewFromInt(5)},
		{Key: "a", Value: decimal.NewFromInt(5)},
		{Key: "c", Value: decimal.NewFromInt(9)},
	}
	got := TopN(entries, 5, OtherLabel)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].Key, got[1].Key, got[2].Key})
	// input untouched
	assert.Equal(t, "b", entries[0].Key)
}

func TestOverTimeUnionsDays(t *testing.T) {
	clicks := []port.ClickFact{
		{Day: day("2024-03-01"), Count: 4},
		{Day: day("2024-03-03"), Count: 2},
		{Day: day("2024-03-03"), Count: 1},
	}
	sales := []port.SaleFact{
		{PurchasedAt: time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC), SalePrice: decimal.NewFromInt(10)},
		{PurchasedAt: time.Date(2024, 3, 3, 1, 0, 0, 0, time.UTC), SalePrice: decimal.NewFromInt(10)},
	}

	assert.Equal(t, []port.DayPoint{
		{Date: "2024-03-01", Clicks: 4, Sales: 0},
		{Date: "2024-03-02", Clicks: 0, Sales: 1},
		{Date: "2024-03-03", Clicks: 3, Sales: 1},
	}, OverTime(clicks, sales))
}

func TestComputeTotals(t *testing.T) {
	clicks := []port.ClickFact{{Count: 2}, {Count: 1}}
	sales := []port.SaleFact{
		{SalePrice: decimal.RequireFromString("19.99")},
		{SalePrice: decimal.RequireFromString("5.01")},
	}
	got := ComputeTotals(clicks, sales)
	assert.Equal(t, int64(3), got.Clicks)
	assert.Equal(t, int64(2), got.Sales)
	assert.True(t, got.Revenue.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 66.67, got.ConversionRate)

	empty := ComputeTotals(nil, nil)
	assert.Zero(t, empty.Clicks)
	assert.Zero(t, empty.ConversionRate)
	assert.True(t, empty.Revenue.IsZero())
}

func TestConversionRateWithoutClicks(t *testing.T) {
	assert.Zero(t, ConversionRate(4, 0))
	assert.Equal(t, 50.0, ConversionRate(1, 2))
}

func TestPlatformBreakdownIsIndependent(t *testing.T) {
	clicks := []port.ClickFact{
		{Platform: domain.PlatformInstagram, Count: 10},
		{Platform: domain.PlatformYouTube, Count: 3},
		{Platform: domain.PlatformInstagram, Count: 5},
	}
	sales := []port.SaleFact{
		{Platform: domain.PlatformWebsite},
		{Platform: domain.PlatformYouTube},
		{Platform: domain.PlatformWebsite},
	}
	got := ComputePlatformBreakdown(clicks, sales)
	assert.Equal(t, []port.PlatformCount{
		{Platform: domain.PlatformInstagram, Count: 15},
		{Platform: domain.PlatformYouTube, Count: 3},
	}, got.Clicks)
	assert.Equal(t, []port.PlatformCount{
		{Platform: domain.PlatformWebsite, Count: 2},
		{Platform: domain.PlatformYouTube, Count: 1},
	}, got.Sales)
}

func TestRankByPayoutMixesCampaigns(t *testing.T) {
	cpc, cps := uuid.New(), uuid.New()
	alice, bob := uuid.New(), uuid.New()
	payouts := map[uuid.UUID]domain.PayoutModel{
		cpc: domain.CPC{Value: decimal.NewFromInt(1)},
		cps: domain.CPS{Value: decimal.NewFromInt(10), Commission: domain.CommissionPercentage},
	}
	clicks := []port.ClickFact{
		{CampaignID: cpc, CreatorID: alice, Count: 7},
		{CampaignID: cps, CreatorID: bob, Count: 100},
	}
	sales := []port.SaleFact{
		{CampaignID: cps, CreatorID: bob, SalePrice: decimal.NewFromInt(50)},
		{CampaignID: cpc, CreatorID: alice, SalePrice: decimal.NewFromInt(500)},
	}

	got := TopN(RankBy(port.DimensionCreator, port.MetricPayout, clicks, sales, payouts), 5, OtherLabel)
	require.Len(t, got, 2)
	assert.Equal(t, alice.String(), got[0].Key)
	assert.True(t, got[0].Value.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, bob.String(), got[1].Key)
	assert.True(t, got[1].Value.Equal(decimal.NewFromInt(5)))

	total := payoutTable(payouts).total(clicks, sales)
	assert.True(t, total.Equal(decimal.NewFromInt(12)))
}

func TestRankByProductUsesSKULabel(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	sales := []port.SaleFact{
		{ProductID: p1, SKU: "SKU-1", SalePrice: decimal.NewFromInt(30)},
		{ProductID: p2, SKU: "SKU-2", SalePrice: decimal.NewFromInt(45)},
		{ProductID: p1, SKU: "SKU-1", SalePrice: decimal.NewFromInt(20)},
	}
	// clicks carry no product and are skipped
	clicks := []port.ClickFact{{Count: 99}}

	got := TopN(RankBy(port.DimensionProduct, port.MetricRevenue, clicks, sales, nil), 5, OtherLabel)
	require.Len(t, got, 2)
	assert.Equal(t, "SKU-1", got[0].Label)
	assert.True(t, got[0].Value.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "SKU-2", got[1].Label)

	bySales := RankBy(port.DimensionProduct, port.MetricSales, clicks, sales, nil)
	require.Len(t, bySales, 2)
	assert.True(t, bySales[0].Value.Equal(decimal.NewFromInt(2)))
}
