package port

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
)

// ScopeKind selects what an analytics report covers.
type ScopeKind string

const (
	ScopeCampaign ScopeKind = "campaign"
	ScopeMember   ScopeKind = "member"
	ScopeBrand    ScopeKind = "brand"
)

// FactFilter narrows fact reads to a scope and an optional inclusive date
// range. From and To are compared against the click day and the sale
// purchase time.
type FactFilter struct {
	Scope ScopeKind
	ID    uuid.UUID
	From  *time.Time
	To    *time.Time
}

// ClickFact is a daily click counter joined with its membership.
type ClickFact struct {
	CampaignID uuid.UUID
	MemberID   uuid.UUID
	CreatorID  uuid.UUID
	Platform   domain.Platform
	Day        time.Time
	Count      int64
}

// SaleFact is a sale event joined with its membership and product.
type SaleFact struct {
	CampaignID  uuid.UUID
	MemberID    uuid.UUID
	CreatorID   uuid.UUID
	ProductID   uuid.UUID
	SKU         string
	Platform    domain.Platform
	SalePrice   decimal.Decimal
	PurchasedAt time.Time
}

// Dimension is a grouping key for top-N rankings.
type Dimension string

const (
	DimensionCreator  Dimension = "creator"
	DimensionProduct  Dimension = "product"
	DimensionPlatform Dimension = "platform"
)

// Metric is the value a top-N ranking sorts by.
type Metric string

const (
	MetricClicks  Metric = "clicks"
	MetricSales   Metric = "sales"
	MetricRevenue Metric = "revenue"
	MetricPayout  Metric = "payout"
)

// ReportReq describes an analytics request.
type ReportReq struct {
	Scope ScopeKind
	ID    uuid.UUID
	From  *time.Time
	To    *time.Time
	// TopN bounds each ranking; zero selects the default.
	TopN int
	// Metric ranks creators and products; empty selects revenue. Platforms
	// are always ranked by clicks.
	Metric Metric
}

// Totals holds the headline numbers of a report.
type Totals struct {
	Clicks         int64           `json:"clicks"`
	Sales          int64           `json:"sales"`
	Revenue        decimal.Decimal `json:"revenue"`
	ConversionRate float64         `json:"conversionRate"`
	Payout         decimal.Decimal `json:"payout"`
}

// DayPoint is one day of the merged click/sale series.
type DayPoint struct {
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
	Sales  int64  `json:"sales"`
}

// RankEntry is one row of a top-N ranking. The synthetic tail entry has
// Other set and an empty Key.
type RankEntry struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Other bool            `json:"other,omitempty"`
}

// PlatformCount is a per-platform metric.
type PlatformCount struct {
	Platform domain.Platform `json:"platform"`
	Count    int64           `json:"count"`
}

// PlatformBreakdown groups clicks and sales by platform independently.
type PlatformBreakdown struct {
	Clicks []PlatformCount `json:"clicks"`
	Sales  []PlatformCount `json:"sales"`
}

// Report is the full aggregation result for a scope.
type Report struct {
	Scope             ScopeKind         `json:"scope"`
	ID                uuid.UUID         `json:"id"`
	Totals            Totals            `json:"totals"`
	OverTime          []DayPoint        `json:"overTime"`
	TopCreators       []RankEntry       `json:"topCreators"`
	TopProducts       []RankEntry       `json:"topProducts"`
	TopPlatforms      []RankEntry       `json:"topPlatforms"`
	PlatformBreakdown PlatformBreakdown `json:"platformBreakdown"`
}
