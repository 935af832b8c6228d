package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignMember binds a creator to a campaign. It is created when the
// creator accepts an invite and owns referral codes and events.
type CampaignMember struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	CreatorID  uuid.UUID
	CreatedAt  time.Time
}

// InviteStatus is the state of a campaign invite.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
)

// CampaignInvite is an invitation for a creator, addressed by email.
type CampaignInvite struct {
	ID         uuid.UUID
	CampaignID uuid.UUID
	Email      string
	Status     InviteStatus
	CreatedAt  time.Time
}
