package httpadapter

import (
	"net/http"
	"time"

	"creatorlink/internal/core/domain"
)

type apiKeyResponse struct {
	APIKey string `json:"apiKey"`
}

type subscriptionResponse struct {
	StartedAt     time.Time `json:"startedAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	UsedFreeTrial bool      `json:"usedFreeTrial"`
}

// handleRegenerateAPIKey issues a new API key. The plaintext is only ever
// returned here.
func (h *Handler) handleRegenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	key, err := h.brands.RegenerateAPIKey(r.Context(), brandFrom(r.Context()).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, apiKeyResponse{APIKey: key})
}

func (h *Handler) handleFreeTrial(w http.ResponseWriter, r *http.Request) {
	sub, err := h.brands.GrantFreeTrial(r.Context(), brandFrom(r.Context()).ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if sub == nil {
		h.writeError(w, r, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, subscriptionResponse{
		StartedAt:     sub.StartedAt,
		ExpiresAt:     sub.ExpiresAt,
		UsedFreeTrial: sub.UsedFreeTrial,
	})
}
