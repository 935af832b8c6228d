package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

const idempotencyHeader = "Idempotency-Key"

type saleRequest struct {
	ReferralCode string           `json:"referralCode"`
	SKU          string           `json:"skuId"`
	SalePrice    *decimal.Decimal `json:"salePrice"`
}

// handleSale records a sale reported by a brand backend. The brand is
// identified by the API key header only; the credential is checked before
// the body, so an unauthenticated caller always gets 401.
func (h *Handler) handleSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = saleRequest{}
	}

	err := h.events.RecordSale(r.Context(), port.SaleInput{
		APIKey:         r.Header.Get(h.opts.APIKeyHeader),
		ReferralCode:   req.ReferralCode,
		SKU:            req.SKU,
		SalePrice:      req.SalePrice,
		IdempotencyKey: r.Header.Get(idempotencyHeader),
	})
	if err != nil {
		h.metrics.Reject("sale", rejectReason(err))
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeMsg(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, domain.ErrInvalidInput):
			writeMsg(w, http.StatusBadRequest, "referralCode, skuId, salePrice required")
		case errors.Is(err, domain.ErrReferralNotFound):
			writeMsg(w, http.StatusNotFound, "Invalid referralCode")
		case errors.Is(err, domain.ErrInvalidMember):
			writeMsg(w, http.StatusBadRequest, "Referral Code not found")
		case errors.Is(err, domain.ErrProductNotFound):
			writeMsg(w, http.StatusNotFound, "Product not found for this brand")
		case errors.Is(err, domain.ErrProductNotInCampaign):
			writeMsg(w, http.StatusBadRequest, "Product not part of this campaign")
		default:
			h.logger.ErrorContext(r.Context(), "record sale", slog.Any("error", err))
			writeMsg(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	h.metrics.Sale()
	writeMsg(w, http.StatusOK, "Sale recorded")
}
