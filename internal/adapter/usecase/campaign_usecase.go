package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
)

// subscriptionChecker is the part of the subscription gate campaign writes
// depend on.
type subscriptionChecker interface {
	Require(ctx context.Context, brandID uuid.UUID) error
}

// CampaignUseCase manages campaign lifecycle, product attachment,
// memberships and referral codes.
type CampaignUseCase struct {
	repo         port.CampaignRepository
	gate         subscriptionChecker
	codeAttempts int
	generateCode func() string
	now          func() time.Time
}

// NewCampaignUseCase creates a campaign use case. codeAttempts bounds how
// many referral codes are drawn before giving up on collisions.
func NewCampaignUseCase(repo port.CampaignRepository, gate subscriptionChecker, codeAttempts int) *CampaignUseCase {
	if codeAttempts <= 0 {
		codeAttempts = 1
	}
	return &CampaignUseCase{
		repo:         repo,
		gate:         gate,
		codeAttempts: codeAttempts,
		generateCode: GenerateCode,
		now:          time.Now,
	}
}

// CreateCampaign creates a DRAFT campaign for a subscribed brand. Both
// payout values must be non-negative whatever the payout kind; the one the
// kind does not use is stored as given.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, brandID uuid.UUID, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if err := u.gate.Require(ctx, brandID); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.RedirectURL = strings.TrimSpace(in.RedirectURL)
	if in.Name == "" || !validRedirect(in.RedirectURL) {
		return nil, domain.ErrInvalidInput
	}
	if in.Payout.CPSValue.IsNegative() || in.Payout.CPCValue.IsNegative() {
		return nil, fmt.Errorf("%w: negative payout value", domain.ErrInvalidInput)
	}
	model, err := in.Payout.Model()
	if err != nil {
		return nil, err
	}
	c := &domain.Campaign{
		ID:          uuid.New(),
		BrandID:     brandID,
		Name:        in.Name,
		Status:      domain.CampaignStatusDraft,
		Payout:      model,
		RedirectURL: in.RedirectURL,
		CreatedAt:   u.now().UTC(),
	}
	if err = u.repo.CreateCampaign(ctx, c, in.Payout); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// StartCampaign activates a DRAFT campaign. StartedAt is set exactly once;
// starting again fails with domain.ErrCampaignAlreadyStarted.
func (u *CampaignUseCase) StartCampaign(ctx context.Context, brandID, campaignID uuid.UUID) (*domain.Campaign, error) {
	if _, err := u.ownedCampaign(ctx, brandID, campaignID); err != nil {
		return nil, err
	}
	ok, err := u.repo.StartCampaign(ctx, campaignID, u.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("start campaign: %w", err)
	}
	if !ok {
		return nil, domain.ErrCampaignAlreadyStarted
	}
	return u.repo.GetCampaign(ctx, campaignID)
}

// CompleteCampaign closes an ACTIVE campaign. Clicks stop accruing once it
// is completed.
func (u *CampaignUseCase) CompleteCampaign(ctx context.Context, brandID, campaignID uuid.UUID) (*domain.Campaign, error) {
	if _, err := u.ownedCampaign(ctx, brandID, campaignID); err != nil {
		return nil, err
	}
	ok, err := u.repo.CompleteCampaign(ctx, campaignID, u.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete campaign: %w", err)
	}
	if !ok {
		return nil, domain.ErrCampaignNotActive
	}
	return u.repo.GetCampaign(ctx, campaignID)
}

// AttachProduct makes one of the brand's products eligible for sales
// attribution in the campaign.
func (u *CampaignUseCase) AttachProduct(ctx context.Context, brandID, campaignID, productID uuid.UUID) (*domain.CampaignProduct, error) {
	if _, err := u.ownedCampaign(ctx, brandID, campaignID); err != nil {
		return nil, err
	}
	p, err := u.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.BrandID != brandID {
		return nil, domain.ErrProductNotFound
	}
	link := &domain.CampaignProduct{ID: uuid.New(), CampaignID: campaignID, ProductID: productID}
	if err = u.repo.AttachProduct(ctx, link); err != nil {
		return nil, fmt.Errorf("attach product: %w", err)
	}
	return link, nil
}

// AcceptInvite turns a pending invite into a campaign membership for the
// creator.
func (u *CampaignUseCase) AcceptInvite(ctx context.Context, inviteID, creatorID uuid.UUID) (*domain.CampaignMember, error) {
	if creatorID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}
	inv, err := u.repo.GetInvite(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != domain.InviteStatusPending {
		return nil, domain.ErrInviteAccepted
	}
	member := &domain.CampaignMember{
		ID:         uuid.New(),
		CampaignID: inv.CampaignID,
		CreatorID:  creatorID,
		CreatedAt:  u.now().UTC(),
	}
	if err = u.repo.AcceptInvite(ctx, inviteID, member); err != nil {
		return nil, err
	}
	return member, nil
}

// CreateReferralCode allocates a new code for the creator's membership on
// platform. Collisions are retried with a fresh draw up to the configured
// number of attempts.
func (u *CampaignUseCase) CreateReferralCode(ctx context.Context, creatorID, memberID uuid.UUID, platform domain.Platform) (*domain.ReferralCode, error) {
	if err := u.OwnsMember(ctx, creatorID, memberID); err != nil {
		return nil, err
	}
	platform, err := domain.ParsePlatform(string(platform))
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt < u.codeAttempts; attempt++ {
		rc := &domain.ReferralCode{
			ID:        uuid.New(),
			Code:      u.generateCode(),
			MemberID:  memberID,
			Platform:  platform,
			CreatedAt: u.now().UTC(),
		}
		err := u.repo.CreateReferralCode(ctx, rc)
		if err == nil {
			return rc, nil
		}
		if !errors.Is(err, domain.ErrCodeTaken) {
			return nil, fmt.Errorf("create referral code: %w", err)
		}
	}
	return nil, domain.ErrCodeSpaceExhausted
}

// OwnsCampaign fails unless the brand owns the campaign.
func (u *CampaignUseCase) OwnsCampaign(ctx context.Context, brandID, campaignID uuid.UUID) error {
	_, err := u.ownedCampaign(ctx, brandID, campaignID)
	return err
}

// OwnsMember fails unless the membership belongs to the creator.
func (u *CampaignUseCase) OwnsMember(ctx context.Context, creatorID, memberID uuid.UUID) error {
	if creatorID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	m, err := u.repo.GetMember(ctx, memberID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrScopeNotFound
	}
	if m.CreatorID != creatorID {
		return domain.ErrForbidden
	}
	return nil
}

func (u *CampaignUseCase) ownedCampaign(ctx context.Context, brandID, campaignID uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrScopeNotFound
	}
	if c.BrandID != brandID {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func validRedirect(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
