package usecase

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

const (
	dateLayout   = "2006-01-02"
	DefaultTopN  = 5
	OtherLabel   = "Other"
	percentScale = 100
)

// ComputeTotals sums clicks, sales and revenue over the facts. Payout is
// left zero; it depends on campaign terms and is filled by the caller.
func ComputeTotals(clicks []port.ClickFact, sales []port.SaleFact) port.Totals {
	t := port.Totals{Revenue: decimal.Zero, Payout: decimal.Zero}
	for _, c := range clicks {
		t.Clicks += c.Count
	}
	for _, s := range sales {
		t.Sales++
		t.Revenue = t.Revenue.Add(s.SalePrice)
	}
	t.ConversionRate = ConversionRate(t.Sales, t.Clicks)
	return t
}

// ConversionRate returns sales/clicks as a percentage rounded to two
// decimals, or 0 when there were no clicks.
func ConversionRate(sales, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return round2(float64(sales) / float64(clicks) * percentScale)
}

// OverTime merges daily click counts and sale counts into one series
// ordered by date. A day present in only one source appears with zero for
// the other metric.
func OverTime(clicks []port.ClickFact, sales []port.SaleFact) []port.DayPoint {
	byDay := make(map[string]*port.DayPoint)
	point := func(day string) *port.DayPoint {
		p, ok := byDay[day]
		if !ok {
			p = &port.DayPoint{Date: day}
			byDay[day] = p
		}
		return p
	}
	for _, c := range clicks {
		point(domain.DayBucket(c.Day).Format(dateLayout)).Clicks += c.Count
	}
	for _, s := range sales {
		point(domain.DayBucket(s.PurchasedAt).Format(dateLayout)).Sales++
	}
	out := make([]port.DayPoint, 0, len(byDay))
	for _, p := range byDay {
		out = append(out, *p)
	}
	// ISO dates sort lexically
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TopN orders entries by value descending, ties broken by key ascending,
// keeps the first n and folds the rest into a single entry labelled
// otherLabel whose value is the sum of the folded tail. The returned values
// always sum to the input total.
func TopN(entries []port.RankEntry, n int, otherLabel string) []port.RankEntry {
	if n <= 0 {
		n = DefaultTopN
	}
	sorted := make([]port.RankEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Value.Cmp(sorted[j].Value); c != 0 {
			return c > 0
		}
		return sorted[i].Key < sorted[j].Key
	})
	if len(sorted) <= n {
		return sorted
	}
	other := port.RankEntry{Label: otherLabel, Value: decimal.Zero, Other: true}
	for _, e := range sorted[n:] {
		other.Value = other.Value.Add(e.Value)
	}
	return append(sorted[:n:n], other)
}

// ComputePlatformBreakdown groups clicks and sales by platform. The two
// lists are independent: a platform with clicks and no sales is only in
// Clicks.
func ComputePlatformBreakdown(clicks []port.ClickFact, sales []port.SaleFact) port.PlatformBreakdown {
	clickCounts := make(map[domain.Platform]int64)
	saleCounts := make(map[domain.Platform]int64)
	for _, c := range clicks {
		clickCounts[c.Platform] += c.Count
	}
	for _, s := range sales {
		saleCounts[s.Platform]++
	}
	return port.PlatformBreakdown{
		Clicks: platformCounts(clickCounts),
		Sales:  platformCounts(saleCounts),
	}
}

func platformCounts(counts map[domain.Platform]int64) []port.PlatformCount {
	out := make([]port.PlatformCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, port.PlatformCount{Platform: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Platform < out[j].Platform
	})
	return out
}

// payoutTable maps campaign ids to their payout model.
type payoutTable map[uuid.UUID]domain.PayoutModel

// clickPayout and salePayout rely on payout being linear in clicks and
// sales, so per-fact amounts can be summed over any grouping.
func (p payoutTable) clickPayout(c port.ClickFact) decimal.Decimal {
	return ComputePayout(p[c.CampaignID], nil, c.Count)
}

func (p payoutTable) salePayout(s port.SaleFact) decimal.Decimal {
	return ComputePayout(p[s.CampaignID], []decimal.Decimal{s.SalePrice}, 0)
}

// total returns the payout over all facts.
func (p payoutTable) total(clicks []port.ClickFact, sales []port.SaleFact) decimal.Decimal {
	total := decimal.Zero
	for _, c := range clicks {
		total = total.Add(p.clickPayout(c))
	}
	for _, s := range sales {
		total = total.Add(p.salePayout(s))
	}
	return total
}

// RankBy groups facts by dim and returns one entry per group holding metric.
// It does not sort; pass the result to TopN.
func RankBy(dim port.Dimension, metric port.Metric, clicks []port.ClickFact, sales []port.SaleFact, payouts map[uuid.UUID]domain.PayoutModel) []port.RankEntry {
	table := payoutTable(payouts)
	groups := make(map[string]*port.RankEntry)
	var order []string
	entry := func(key, label string) *port.RankEntry {
		e, ok := groups[key]
		if !ok {
			e = &port.RankEntry{Key: key, Label: label, Value: decimal.Zero}
			groups[key] = e
			order = append(order, key)
		}
		return e
	}

	for _, c := range clicks {
		key, label, ok := clickKey(dim, c)
		if !ok {
			continue
		}
		switch metric {
		case port.MetricClicks:
			e := entry(key, label)
			e.Value = e.Value.Add(decimal.NewFromInt(c.Count))
		case port.MetricPayout:
			e := entry(key, label)
			e.Value = e.Value.Add(table.clickPayout(c))
		}
	}
	for _, s := range sales {
		key, label := saleKey(dim, s)
		switch metric {
		case port.MetricSales:
			e := entry(key, label)
			e.Value = e.Value.Add(decimal.NewFromInt(1))
		case port.MetricRevenue:
			e := entry(key, label)
			e.Value = e.Value.Add(s.SalePrice)
		case port.MetricPayout:
			e := entry(key, label)
			e.Value = e.Value.Add(table.salePayout(s))
		}
	}

	out := make([]port.RankEntry, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out
}

// clickKey returns the grouping key of a click fact. Clicks carry no
// product, so they never group by product.
func clickKey(dim port.Dimension, c port.ClickFact) (key, label string, ok bool) {
	switch dim {
	case port.DimensionCreator:
		return c.CreatorID.String(), c.CreatorID.String(), true
	case port.DimensionPlatform:
		return string(c.Platform), string(c.Platform), true
	default:
		return "", "", false
	}
}

func saleKey(dim port.Dimension, s port.SaleFact) (key, label string) {
	switch dim {
	case port.DimensionCreator:
		return s.CreatorID.String(), s.CreatorID.String()
	case port.DimensionProduct:
		return s.ProductID.String(), s.SKU
	default:
		return string(s.Platform), string(s.Platform)
	}
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
