package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"creatorlink/internal/core/domain"
)

type clickRequest struct {
	ReferralCode string `json:"referralCode"`
}

type clickResponse struct {
	Msg         string `json:"msg"`
	RedirectURL string `json:"redirectUrl"`
}

// handleClick counts a click for the referral code in the body and returns
// the campaign's redirect URL. A body that does not decode is treated as a
// missing code.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = clickRequest{}
	}

	redirectURL, err := h.events.RecordClick(r.Context(), req.ReferralCode)
	if err != nil {
		h.metrics.Reject("click", rejectReason(err))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeMsg(w, http.StatusBadRequest, "Referral Code not found")
		case errors.Is(err, domain.ErrReferralNotFound):
			writeMsg(w, http.StatusNotFound, "Invalid Referral Code")
		case errors.Is(err, domain.ErrInvalidMember):
			writeMsg(w, http.StatusBadRequest, "Invalid Referral Code")
		case errors.Is(err, domain.ErrCampaignInactive):
			writeMsg(w, http.StatusBadRequest, "Campaign is not active")
		default:
			h.logger.ErrorContext(r.Context(), "record click", slog.Any("error", err))
			writeMsg(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	h.metrics.Click()
	writeJSON(w, http.StatusOK, clickResponse{Msg: "Click counted", RedirectURL: redirectURL})
}
