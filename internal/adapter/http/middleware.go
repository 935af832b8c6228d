package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
)

// creatorHeader carries the creator identity on creator routes.
const creatorHeader = "X-Creator-ID"

type ctxKey int

const (
	brandKey ctxKey = iota
	creatorKey
)

// logRequests logs every request once it completes and records its
// latency under the matched route pattern.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		h.metrics.Observe(route, r.Method, strconv.Itoa(status), elapsed)

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", elapsed),
		)
	})
}

// requireBrand authenticates the brand API key header and stores the brand
// in the request context. The Authorization header is never consulted.
func (h *Handler) requireBrand(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		brand, err := h.brands.AuthenticateBrand(r.Context(), r.Header.Get(h.opts.APIKeyHeader))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), brandKey, brand)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireCreator reads the creator id header.
func (h *Handler) requireCreator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(strings.TrimSpace(r.Header.Get(creatorHeader)))
		if err != nil || id == uuid.Nil {
			h.writeError(w, r, domain.ErrUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), creatorKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func brandFrom(ctx context.Context) *domain.Brand {
	b, _ := ctx.Value(brandKey).(*domain.Brand)
	return b
}

func creatorFrom(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(creatorKey).(uuid.UUID)
	return id
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidInput
	}
	return id, nil
}
