package usecase

import (
	"context"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

const (
	codeMin = 10000
	codeMax = 99999
)

// ResolvedReferral is everything an event needs to know about a referral
// code.
type ResolvedReferral struct {
	Code           string
	MemberID       uuid.UUID
	CampaignID     uuid.UUID
	Platform       domain.Platform
	CampaignStatus domain.CampaignStatus
	RedirectURL    string
}

// ReferralRegistry resolves referral codes to their membership and
// campaign. It holds no state of its own and re-reads the store on every
// call.
type ReferralRegistry struct {
	repo port.ReferralRepository
}

// NewReferralRegistry creates a registry backed by repo.
func NewReferralRegistry(repo port.ReferralRepository) *ReferralRegistry {
	return &ReferralRegistry{repo: repo}
}

// Resolve walks code -> member -> campaign. An unknown code is
// domain.ErrReferralNotFound; a code whose member or campaign row is gone
// is domain.ErrInvalidMember.
func (r *ReferralRegistry) Resolve(ctx context.Context, code string) (*ResolvedReferral, error) {
	rc, err := r.repo.FindReferralCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, domain.ErrReferralNotFound
	}
	member, err := r.repo.GetMember(ctx, rc.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrInvalidMember
	}
	camp, err := r.repo.GetCampaign(ctx, member.CampaignID)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, domain.ErrInvalidMember
	}
	return &ResolvedReferral{
		Code:           rc.Code,
		MemberID:       member.ID,
		CampaignID:     camp.ID,
		Platform:       rc.Platform,
		CampaignStatus: camp.Status,
		RedirectURL:    camp.RedirectURL,
	}, nil
}

// GenerateCode draws a 5-digit numeric code uniformly from [10000, 99999].
// Uniqueness is enforced by the store; callers retry on
// domain.ErrCodeTaken.
func GenerateCode() string {
	return strconv.Itoa(codeMin + rand.IntN(codeMax-codeMin+1))
}
