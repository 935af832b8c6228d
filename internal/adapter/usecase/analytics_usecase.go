package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

// AnalyticsUseCase aggregates stored facts into performance reports for a
// campaign, a membership or a whole brand. It only reads.
type AnalyticsUseCase struct {
	repo        port.AnalyticsRepository
	defaultTopN int
}

// NewAnalyticsUseCase creates an aggregation engine. topN is the ranking
// size used when a request does not set one.
func NewAnalyticsUseCase(repo port.AnalyticsRepository, topN int) *AnalyticsUseCase {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &AnalyticsUseCase{repo: repo, defaultTopN: topN}
}

// Report builds the totals, daily series, rankings and platform breakdown
// for the requested scope. An empty scope yields zero totals.
func (u *AnalyticsUseCase) Report(ctx context.Context, req port.ReportReq) (*port.Report, error) {
	payouts, err := u.payoutModels(ctx, req.Scope, req.ID)
	if err != nil {
		return nil, err
	}

	filter := port.FactFilter{Scope: req.Scope, ID: req.ID, From: req.From, To: req.To}
	clicks, err := u.repo.ListClickFacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list click facts: %w", err)
	}
	sales, err := u.repo.ListSaleFacts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sale facts: %w", err)
	}

	n := req.TopN
	if n <= 0 {
		n = u.defaultTopN
	}
	metric := req.Metric
	if metric == "" {
		metric = port.MetricRevenue
	}

	totals := ComputeTotals(clicks, sales)
	totals.Payout = payoutTable(payouts).total(clicks, sales)

	return &port.Report{
		Scope:             req.Scope,
		ID:                req.ID,
		Totals:            totals,
		OverTime:          OverTime(clicks, sales),
		TopCreators:       TopN(RankBy(port.DimensionCreator, metric, clicks, sales, payouts), n, OtherLabel),
		TopProducts:       TopN(RankBy(port.DimensionProduct, metric, clicks, sales, payouts), n, OtherLabel),
		TopPlatforms:      TopN(RankBy(port.DimensionPlatform, port.MetricClicks, clicks, sales, payouts), n, OtherLabel),
		PlatformBreakdown: ComputePlatformBreakdown(clicks, sales),
	}, nil
}

// payoutModels loads the payout model of every campaign in scope and
// checks that the scope exists.
func (u *AnalyticsUseCase) payoutModels(ctx context.Context, scope port.ScopeKind, id uuid.UUID) (map[uuid.UUID]domain.PayoutModel, error) {
	var campaigns []domain.Campaign
	switch scope {
	case port.ScopeCampaign:
		c, err := u.repo.GetCampaign(ctx, id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrScopeNotFound
		}
		campaigns = append(campaigns, *c)
	case port.ScopeMember:
		m, err := u.repo.GetMember(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrScopeNotFound
		}
		c, err := u.repo.GetCampaign(ctx, m.CampaignID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrScopeNotFound
		}
		campaigns = append(campaigns, *c)
	case port.ScopeBrand:
		b, err := u.repo.GetBrand(ctx, id)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.ErrScopeNotFound
		}
		if campaigns, err = u.repo.ListCampaignsByBrand(ctx, id); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: scope %q", domain.ErrInvalidInput, scope)
	}

	out := make(map[uuid.UUID]domain.PayoutModel, len(campaigns))
	for _, c := range campaigns {
		out[c.ID] = c.Payout
	}
	return out, nil
}
