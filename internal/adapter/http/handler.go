package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"creatorlink/internal/adapter/metrics"
	"creatorlink/internal/core/port"
)

// Options tunes the router.
type Options struct {
	// APIKeyHeader is the header brands send their API key in.
	APIKeyHeader string
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration
	// MetricsPath mounts the Prometheus handler when metrics are set.
	MetricsPath string
}

// Handler is the inbound HTTP adapter. It serves the public event
// endpoints and the brand and creator API on a chi.Router.
type Handler struct {
	events    port.EventUseCase
	analytics port.AnalyticsUseCase
	campaigns port.CampaignUseCase
	brands    port.BrandUseCase
	metrics   *metrics.Metrics
	logger    *slog.Logger
	opts      Options
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. m may be nil.
func NewHandler(
	events port.EventUseCase,
	analytics port.AnalyticsUseCase,
	campaigns port.CampaignUseCase,
	brands port.BrandUseCase,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts Options,
) *Handler {
	if opts.APIKeyHeader == "" {
		opts.APIKeyHeader = "x-api-key"
	}
	h := &Handler{
		events:    events,
		analytics: analytics,
		campaigns: campaigns,
		brands:    brands,
		metrics:   m,
		logger:    logger,
		opts:      opts,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.Get("/healthz", h.handleHealth)
	if m != nil && opts.MetricsPath != "" {
		r.Method(http.MethodGet, opts.MetricsPath, m.Handler())
	}

	r.Route("/event", func(r chi.Router) {
		r.Post("/click", h.handleClick)
		r.Post("/sale", h.handleSale)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.requireBrand)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/start", h.handleStartCampaign)
			r.Post("/campaigns/{id}/complete", h.handleCompleteCampaign)
			r.Post("/campaigns/{id}/products", h.handleAttachProduct)
			r.Post("/brand/api-key", h.handleRegenerateAPIKey)
			r.Post("/brand/free-trial", h.handleFreeTrial)
			r.Get("/analytics/campaigns/{id}", h.handleCampaignReport)
			r.Get("/analytics/brand", h.handleBrandReport)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.requireCreator)
			r.Post("/invites/{id}/accept", h.handleAcceptInvite)
			r.Post("/members/{id}/referral-codes", h.handleCreateReferralCode)
			r.Get("/analytics/members/{id}", h.handleMemberReport)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
