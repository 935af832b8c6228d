package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port"
	"creatorlink/internal/core/port/mocks"
)

type stubGate struct{ err error }

func (g stubGate) Require(context.Context, uuid.UUID) error { return g.err }

func newTestCampaignUseCase(repo *mocks.MockCampaignRepository, gateErr error) *CampaignUseCase {
	u := NewCampaignUseCase(repo, stubGate{err: gateErr}, 3)
	u.now = func() time.Time { return gateNow }
	return u
}

func TestCreateCampaign(t *testing.T) {
	brandID := uuid.New()
	terms := domain.PayoutTerms{
		Kind:       domain.PayoutCPS,
		Commission: domain.CommissionPercentage,
		CPSValue:   decimal.NewFromInt(10),
		CPCValue:   decimal.NewFromInt(4),
	}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool {
			return c.BrandID == brandID && c.Status == domain.CampaignStatusDraft && c.StartedAt == nil
		}), terms).
		Return(nil)

	c, err := newTestCampaignUseCase(repo, nil).CreateCampaign(context.Background(), brandID, port.CreateCampaignInput{
		Name:        " Spring drop ",
		RedirectURL: "https://shop.example.com/spring",
		Payout:      terms,
	})
	require.NoError(t, err)
	assert.Equal(t, "Spring drop", c.Name)
	assert.Equal(t, domain.CPS{Value: decimal.NewFromInt(10), Commission: domain.CommissionPercentage}, c.Payout)
}

func TestCreateCampaignRejects(t *testing.T) {
	valid := port.CreateCampaignInput{
		Name:        "Spring",
		RedirectURL: "https://shop.example.com",
		Payout:      domain.PayoutTerms{Kind: domain.PayoutCPC, CPCValue: decimal.NewFromInt(1)},
	}
	cases := map[string]struct {
		mutate  func(*port.CreateCampaignInput)
		gateErr error
		want    error
	}{
		"no subscription":    {mutate: func(*port.CreateCampaignInput) {}, gateErr: domain.ErrSubscriptionInactive, want: domain.ErrSubscriptionInactive},
		"blank name":         {mutate: func(in *port.CreateCampaignInput) { in.Name = " " }, want: domain.ErrInvalidInput},
		"relative redirect":  {mutate: func(in *port.CreateCampaignInput) { in.RedirectURL = "/landing" }, want: domain.ErrInvalidInput},
		"ftp redirect":       {mutate: func(in *port.CreateCampaignInput) { in.RedirectURL = "ftp://host/x" }, want: domain.ErrInvalidInput},
		"negative cps":       {mutate: func(in *port.CreateCampaignInput) { in.Payout.CPSValue = decimal.NewFromInt(-1) }, want: domain.ErrInvalidInput},
		"unknown model":      {mutate: func(in *port.CreateCampaignInput) { in.Payout.Kind = "CPM" }, want: domain.ErrInvalidInput},
		"cpc bad commission": {mutate: func(in *port.CreateCampaignInput) { in.Payout.Commission = "BOGUS" }, want: domain.ErrInvalidInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			in := valid
			tc.mutate(&in)
			_, err := newTestCampaignUseCase(repo, tc.gateErr).CreateCampaign(context.Background(), uuid.New(), in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestStartCampaignOnce(t *testing.T) {
	brandID := uuid.New()
	draft := &domain.Campaign{ID: uuid.New(), BrandID: brandID, Status: domain.CampaignStatusDraft}
	started := *draft
	started.Status = domain.CampaignStatusActive
	started.StartedAt = &gateNow

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, draft.ID).Return(draft, nil).Once()
	repo.EXPECT().StartCampaign(mock.Anything, draft.ID, gateNow).Return(true, nil).Once()
	repo.EXPECT().GetCampaign(mock.Anything, draft.ID).Return(&started, nil).Once()
	repo.EXPECT().GetCampaign(mock.Anything, draft.ID).Return(&started, nil).Once()
	repo.EXPECT().StartCampaign(mock.Anything, draft.ID, gateNow).Return(false, nil).Once()

	u := newTestCampaignUseCase(repo, nil)
	got, err := u.StartCampaign(context.Background(), brandID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, got.Status)

	_, err = u.StartCampaign(context.Background(), brandID, draft.ID)
	require.ErrorIs(t, err, domain.ErrCampaignAlreadyStarted)
}

func TestCompleteCampaignRequiresActive(t *testing.T) {
	brandID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), BrandID: brandID, Status: domain.CampaignStatusDraft}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().CompleteCampaign(mock.Anything, c.ID, gateNow).Return(false, nil)

	_, err := newTestCampaignUseCase(repo, nil).CompleteCampaign(context.Background(), brandID, c.ID)
	require.ErrorIs(t, err, domain.ErrCampaignNotActive)
}

func TestCampaignOwnership(t *testing.T) {
	c := &domain.Campaign{ID: uuid.New(), BrandID: uuid.New()}
	missing := uuid.New()

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().GetCampaign(mock.Anything, missing).Return(nil, nil)

	u := newTestCampaignUseCase(repo, nil)
	require.NoError(t, u.OwnsCampaign(context.Background(), c.BrandID, c.ID))
	require.ErrorIs(t, u.OwnsCampaign(context.Background(), uuid.New(), c.ID), domain.ErrForbidden)
	require.ErrorIs(t, u.OwnsCampaign(context.Background(), c.BrandID, missing), domain.ErrScopeNotFound)
}

func TestAttachProduct(t *testing.T) {
	brandID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), BrandID: brandID}
	own := &domain.Product{ID: uuid.New(), BrandID: brandID}
	foreign := &domain.Product{ID: uuid.New(), BrandID: uuid.New()}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().GetProduct(mock.Anything, own.ID).Return(own, nil)
	repo.EXPECT().GetProduct(mock.Anything, foreign.ID).Return(foreign, nil)
	repo.EXPECT().
		AttachProduct(mock.Anything, mock.MatchedBy(func(l *domain.CampaignProduct) bool {
			return l.CampaignID == c.ID && l.ProductID == own.ID
		})).
		Return(nil)

	u := newTestCampaignUseCase(repo, nil)
	link, err := u.AttachProduct(context.Background(), brandID, c.ID, own.ID)
	require.NoError(t, err)
	assert.Equal(t, own.ID, link.ProductID)

	_, err = u.AttachProduct(context.Background(), brandID, c.ID, foreign.ID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAcceptInvite(t *testing.T) {
	creator := uuid.New()
	pending := &domain.CampaignInvite{ID: uuid.New(), CampaignID: uuid.New(), Status: domain.InviteStatusPending}
	accepted := &domain.CampaignInvite{ID: uuid.New(), CampaignID: uuid.New(), Status: domain.InviteStatusAccepted}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetInvite(mock.Anything, pending.ID).Return(pending, nil)
	repo.EXPECT().GetInvite(mock.Anything, accepted.ID).Return(accepted, nil)
	repo.EXPECT().
		AcceptInvite(mock.Anything, pending.ID, mock.MatchedBy(func(m *domain.CampaignMember) bool {
			return m.CampaignID == pending.CampaignID && m.CreatorID == creator
		})).
		Return(nil)

	u := newTestCampaignUseCase(repo, nil)
	m, err := u.AcceptInvite(context.Background(), pending.ID, creator)
	require.NoError(t, err)
	assert.Equal(t, pending.CampaignID, m.CampaignID)

	_, err = u.AcceptInvite(context.Background(), accepted.ID, creator)
	require.ErrorIs(t, err, domain.ErrInviteAccepted)

	_, err = u.AcceptInvite(context.Background(), pending.ID, uuid.Nil)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateReferralCodeRetriesCollisions(t *testing.T) {
	creator := uuid.New()
	member := &domain.CampaignMember{ID: uuid.New(), CreatorID: creator}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetMember(mock.Anything, member.ID).Return(member, nil)

	var tried []string
	repo.EXPECT().
		CreateReferralCode(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, rc *domain.ReferralCode) error {
			tried = append(tried, rc.Code)
			if rc.Code == "11111" {
				return domain.ErrCodeTaken
			}
			return nil
		})

	u := newTestCampaignUseCase(repo, nil)
	draws := []string{"11111", "22222"}
	u.generateCode = func() string {
		c := draws[0]
		draws = draws[1:]
		return c
	}

	rc, err := u.CreateReferralCode(context.Background(), creator, member.ID, "instagram")
	require.NoError(t, err)
	assert.Equal(t, "22222", rc.Code)
	assert.Equal(t, domain.PlatformInstagram, rc.Platform)
	assert.Equal(t, []string{"11111", "22222"}, tried)
}

func TestCreateReferralCodeGivesUp(t *testing.T) {
	creator := uuid.New()
	member := &domain.CampaignMember{ID: uuid.New(), CreatorID: creator}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetMember(mock.Anything, member.ID).Return(member, nil)
	repo.EXPECT().CreateReferralCode(mock.Anything, mock.Anything).Return(domain.ErrCodeTaken).Times(3)

	u := newTestCampaignUseCase(repo, nil)
	u.generateCode = func() string { return "11111" }

	_, err := u.CreateReferralCode(context.Background(), creator, member.ID, domain.PlatformYouTube)
	require.ErrorIs(t, err, domain.ErrCodeSpaceExhausted)
}

func TestCreateReferralCodeChecks(t *testing.T) {
	creator := uuid.New()
	member := &domain.CampaignMember{ID: uuid.New(), CreatorID: creator}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetMember(mock.Anything, member.ID).Return(member, nil)

	u := newTestCampaignUseCase(repo, nil)
	_, err := u.CreateReferralCode(context.Background(), uuid.New(), member.ID, domain.PlatformX)
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = u.CreateReferralCode(context.Background(), creator, member.ID, "MYSPACE")
	require.ErrorIs(t, err, domain.ErrInvalidPlatform)
}

func TestCreateReferralCodeStoreFailure(t *testing.T) {
	creator := uuid.New()
	member := &domain.CampaignMember{ID: uuid.New(), CreatorID: creator}
	boom := errors.New("disk full")

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetMember(mock.Anything, member.ID).Return(member, nil)
	repo.EXPECT().CreateReferralCode(mock.Anything, mock.Anything).Return(boom).Once()

	_, err := newTestCampaignUseCase(repo, nil).CreateReferralCode(context.Background(), creator, member.ID, domain.PlatformX)
	require.ErrorIs(t, err, boom)
}
