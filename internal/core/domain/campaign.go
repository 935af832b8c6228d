package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign. Transitions only move
// forward: DRAFT -> ACTIVE -> COMPLETED.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
)

// Campaign represents a brand's creator-marketing campaign.
type Campaign struct {
	ID          uuid.UUID
	BrandID     uuid.UUID
	Name        string
	Status      CampaignStatus
	Payout      PayoutModel
	RedirectURL string
	StartedAt   *time.Time // set once, on start
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// IsActive reports whether the campaign accrues clicks.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// CampaignProduct marks a product as eligible for attribution within a
// campaign.
type CampaignProduct struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	ProductID  uuid.UUID
}
