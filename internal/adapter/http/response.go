package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"creatorlink/internal/core/domain"
)

type msgResponse struct {
	Msg string `json:"msg"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, msgResponse{Msg: msg})
}

// statusFor maps a domain error from the brand and creator API to an HTTP
// status. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidPlatform),
		errors.Is(err, domain.ErrCampaignInactive),
		errors.Is(err, domain.ErrCampaignAlreadyStarted),
		errors.Is(err, domain.ErrCampaignNotActive),
		errors.Is(err, domain.ErrSubscriptionInactive),
		errors.Is(err, domain.ErrFreeTrialUsed),
		errors.Is(err, domain.ErrInviteAccepted):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrScopeNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCodeSpaceExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as {"error": ...}. Internal errors are logged and
// replaced by a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// rejectReason is the metrics label for a rejected event.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrReferralNotFound):
		return "referral_not_found"
	case errors.Is(err, domain.ErrInvalidMember):
		return "invalid_member"
	case errors.Is(err, domain.ErrCampaignInactive):
		return "campaign_inactive"
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrProductNotInCampaign):
		return "product_not_in_campaign"
	default:
		return "internal"
	}
}
