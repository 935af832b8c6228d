package httpadapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

const dateLayout = "2006-01-02"

// handleCampaignReport returns the report of a campaign the brand owns.
func (h *Handler) handleCampaignReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.campaigns.OwnsCampaign(r.Context(), brandFrom(r.Context()).ID, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.report(w, r, port.ScopeCampaign, id)
}

// handleBrandReport returns the report across all of the brand's campaigns.
func (h *Handler) handleBrandReport(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, port.ScopeBrand, brandFrom(r.Context()).ID)
}

// handleMemberReport returns the report of one of the creator's
// memberships.
func (h *Handler) handleMemberReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.campaigns.OwnsMember(r.Context(), creatorFrom(r.Context()), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.report(w, r, port.ScopeMember, id)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request, scope port.ScopeKind, id uuid.UUID) {
	req, err := parseReportQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	req.Scope, req.ID = scope, id

	rep, err := h.analytics.Report(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// parseReportQuery reads the optional from, to, top and metric
// parameters. Dates are YYYY-MM-DD or RFC3339 and bound whole days.
func parseReportQuery(q url.Values) (port.ReportReq, error) {
	var req port.ReportReq
	var err error
	if req.From, err = parseDate(q.Get("from")); err != nil {
		return req, fmt.Errorf("%w: from: %v", domain.ErrInvalidInput, err)
	}
	if req.To, err = parseDate(q.Get("to")); err != nil {
		return req, fmt.Errorf("%w: to: %v", domain.ErrInvalidInput, err)
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return req, fmt.Errorf("%w: to before from", domain.ErrInvalidInput)
	}
	if s := q.Get("top"); s != "" {
		n, convErr := strconv.Atoi(s)
		if convErr != nil || n <= 0 {
			return req, fmt.Errorf("%w: top must be a positive integer", domain.ErrInvalidInput)
		}
		req.TopN = n
	}
	switch m := port.Metric(q.Get("metric")); m {
	case "", port.MetricClicks, port.MetricSales, port.MetricRevenue, port.MetricPayout:
		req.Metric = m
	default:
		return req, fmt.Errorf("%w: unknown metric %q", domain.ErrInvalidInput, m)
	}
	return req, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
