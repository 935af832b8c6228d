package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

type createCampaignRequest struct {
	Name              string                `json:"name"`
	RedirectURL       string                `json:"redirectUrl"`
	PayoutModel       domain.PayoutKind     `json:"payoutModel"`
	CPSCommissionType domain.CommissionType `json:"cpsCommissionType"`
	CPSValue          decimal.Decimal       `json:"cpsValue"`
	CPCValue          decimal.Decimal       `json:"cpcValue"`
}

type campaignResponse struct {
	ID                uuid.UUID             `json:"id"`
	BrandID           uuid.UUID             `json:"brandId"`
	Name              string                `json:"name"`
	Status            domain.CampaignStatus `json:"status"`
	PayoutModel       domain.PayoutKind     `json:"payoutModel"`
	CPSCommissionType domain.CommissionType `json:"cpsCommissionType,omitempty"`
	CPSValue          *decimal.Decimal      `json:"cpsValue,omitempty"`
	CPCValue          *decimal.Decimal      `json:"cpcValue,omitempty"`
	RedirectURL       string                `json:"redirectUrl"`
	StartedAt         *time.Time            `json:"startedAt"`
	CompletedAt       *time.Time            `json:"completedAt"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// newCampaignResponse flattens a campaign for the wire. Only the payout
// values the model uses are included.
func newCampaignResponse(c *domain.Campaign) campaignResponse {
	resp := campaignResponse{
		ID:          c.ID,
		BrandID:     c.BrandID,
		Name:        c.Name,
		Status:      c.Status,
		RedirectURL: c.RedirectURL,
		StartedAt:   c.StartedAt,
		CompletedAt: c.CompletedAt,
		CreatedAt:   c.CreatedAt,
	}
	setCPS := func(m domain.CPS) {
		resp.CPSCommissionType = m.Commission
		v := m.Value
		resp.CPSValue = &v
	}
	setCPC := func(m domain.CPC) {
		v := m.Value
		resp.CPCValue = &v
	}
	switch m := c.Payout.(type) {
	case domain.CPC:
		setCPC(m)
	case domain.CPS:
		setCPS(m)
	case domain.Both:
		setCPS(m.CPS)
		setCPC(m.CPC)
	}
	if c.Payout != nil {
		resp.PayoutModel = c.Payout.Kind()
	}
	return resp
}

type attachProductRequest struct {
	ProductID uuid.UUID `json:"productId"`
}

type campaignProductResponse struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaignId"`
	ProductID  uuid.UUID `json:"productId"`
}

type memberResponse struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaignId"`
	CreatorID  uuid.UUID `json:"creatorId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type referralCodeRequest struct {
	Platform string `json:"platform"`
}

type referralCodeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	MemberID  uuid.UUID       `json:"memberId"`
	Platform  domain.Platform `json:"platform"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, domain.ErrInvalidInput)
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), brandFrom(r.Context()).ID, port.CreateCampaignInput{
		Name:        req.Name,
		RedirectURL: req.RedirectURL,
		Payout: domain.PayoutTerms{
			Kind:       req.PayoutModel,
			Commission: req.CPSCommissionType,
			CPSValue:   req.CPSValue,
			CPCValue:   req.CPCValue,
		},
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newCampaignResponse(c))
}

func (h *Handler) handleStartCampaign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.StartCampaign)
}

func (h *Handler) handleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.CompleteCampaign)
}

func (h *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, brandID, campaignID uuid.UUID) (*domain.Campaign, error),
) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := apply(r.Context(), brandFrom(r.Context()).ID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

func (h *Handler) handleAttachProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req attachProductRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == uuid.Nil {
		h.writeError(w, r, domain.ErrInvalidInput)
		return
	}
	link, err := h.campaigns.AttachProduct(r.Context(), brandFrom(r.Context()).ID, id, req.ProductID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaignProductResponse{ID: link.ID, CampaignID: link.CampaignID, ProductID: link.ProductID})
}

func (h *Handler) handleAcceptInvite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	m, err := h.campaigns.AcceptInvite(r.Context(), id, creatorFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, memberResponse{ID: m.ID, CampaignID: m.CampaignID, CreatorID: m.CreatorID, CreatedAt: m.CreatedAt})
}

func (h *Handler) handleCreateReferralCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req referralCodeRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, domain.ErrInvalidInput)
		return
	}
	rc, err := h.campaigns.CreateReferralCode(r.Context(), creatorFrom(r.Context()), id, domain.Platform(req.Platform))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, referralCodeResponse{
		ID:        rc.ID,
		Code:      rc.Code,
		MemberID:  rc.MemberID,
		Platform:  rc.Platform,
		CreatedAt: rc.CreatedAt,
	})
}
