package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port/mocks"
)

var gateNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestGate(repo *mocks.MockBrandRepository) *SubscriptionGate {
	g := NewSubscriptionGate(repo, 7*24*time.Hour)
	g.now = func() time.Time { return gateNow }
	return g
}

func TestIsSubscriptionActive(t *testing.T) {
	sub := &domain.Subscription{ExpiresAt: gateNow}
	assert.True(t, IsSubscriptionActive(sub, gateNow))
	assert.True(t, IsSubscriptionActive(sub, gateNow.Add(-time.Second)))
	assert.False(t, IsSubscriptionActive(sub, gateNow.Add(time.Nanosecond)))
	assert.False(t, IsSubscriptionActive(nil, gateNow))
}

func TestRequire(t *testing.T) {
	brandID := uuid.New()

	t.Run("active", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		repo.EXPECT().GetSubscription(mock.Anything, brandID).
			Return(&domain.Subscription{BrandID: brandID, ExpiresAt: gateNow.Add(time.Hour)}, nil)
		require.NoError(t, newTestGate(repo).Require(context.Background(), brandID))
	})

	t.Run("expired", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		repo.EXPECT().GetSubscription(mock.Anything, brandID).
			Return(&domain.Subscription{BrandID: brandID, ExpiresAt: gateNow.Add(-time.Hour)}, nil)
		require.ErrorIs(t, newTestGate(repo).Require(context.Background(), brandID), domain.ErrSubscriptionInactive)
	})

	t.Run("never subscribed", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		repo.EXPECT().GetSubscription(mock.Anything, brandID).Return(nil, nil)
		require.ErrorIs(t, newTestGate(repo).Require(context.Background(), brandID), domain.ErrSubscriptionInactive)
	})
}

func TestGrantFreeTrialOnce(t *testing.T) {
	brandID := uuid.New()
	repo := mocks.NewMockBrandRepository(t)
	sub := &domain.Subscription{BrandID: brandID, StartedAt: gateNow, ExpiresAt: gateNow.Add(7 * 24 * time.Hour), UsedFreeTrial: true}

	repo.EXPECT().ClaimFreeTrial(mock.Anything, brandID, gateNow, sub.ExpiresAt).Return(true, nil).Once()
	repo.EXPECT().GetSubscription(mock.Anything, brandID).Return(sub, nil).Once()
	repo.EXPECT().ClaimFreeTrial(mock.Anything, brandID, gateNow, sub.ExpiresAt).Return(false, nil).Once()

	g := newTestGate(repo)
	got, err := g.GrantFreeTrial(context.Background(), brandID)
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	_, err = g.GrantFreeTrial(context.Background(), brandID)
	require.ErrorIs(t, err, domain.ErrFreeTrialUsed)
}

func TestRenew(t *testing.T) {
	brandID := uuid.New()
	month := 30 * 24 * time.Hour

	t.Run("extends active subscription from expiry", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		started := gateNow.Add(-24 * time.Hour)
		current := &domain.Subscription{BrandID: brandID, StartedAt: started, ExpiresAt: gateNow.Add(48 * time.Hour)}
		repo.EXPECT().GetSubscription(mock.Anything, brandID).Return(current, nil)
		repo.EXPECT().ExtendSubscription(mock.Anything, brandID, started, current.ExpiresAt.Add(month)).Return(nil)

		_, err := newTestGate(repo).Renew(context.Background(), brandID, month)
		require.NoError(t, err)
	})

	t.Run("restarts lapsed subscription from now", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		current := &domain.Subscription{BrandID: brandID, StartedAt: gateNow.Add(-90 * 24 * time.Hour), ExpiresAt: gateNow.Add(-time.Hour)}
		repo.EXPECT().GetSubscription(mock.Anything, brandID).Return(current, nil)
		repo.EXPECT().ExtendSubscription(mock.Anything, brandID, gateNow, gateNow.Add(month)).Return(nil)

		_, err := newTestGate(repo).Renew(context.Background(), brandID, month)
		require.NoError(t, err)
	})

	t.Run("rejects non-positive period", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		_, err := newTestGate(repo).Renew(context.Background(), brandID, 0)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthenticateBrand(t *testing.T) {
	repo := mocks.NewMockBrandRepository(t)
	brand := &domain.Brand{ID: uuid.New(), APIKeyHash: HashAPIKey("ck_good")}
	repo.EXPECT().FindBrandByAPIKeyHash(mock.Anything, HashAPIKey("ck_good")).Return(brand, nil)
	repo.EXPECT().FindBrandByAPIKeyHash(mock.Anything, HashAPIKey("ck_bad")).Return(nil, nil)

	u := NewBrandUseCase(repo, newTestGate(repo))

	got, err := u.AuthenticateBrand(context.Background(), "ck_good")
	require.NoError(t, err)
	assert.Equal(t, brand, got)

	_, err = u.AuthenticateBrand(context.Background(), "ck_bad")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = u.AuthenticateBrand(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegenerateAPIKey(t *testing.T) {
	brandID := uuid.New()

	t.Run("stores hash of returned key", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		repo.EXPECT().GetSubscription(mock.Anything, brandID).
			Return(&domain.Subscription{ExpiresAt: gateNow.Add(time.Hour)}, nil)
		var stored string
		repo.EXPECT().UpdateAPIKeyHash(mock.Anything, brandID, mock.AnythingOfType("string")).
			Run(func(_ context.Context, _ uuid.UUID, hash string) { stored = hash }).
			Return(nil)

		key, err := NewBrandUseCase(repo, newTestGate(repo)).RegenerateAPIKey(context.Background(), brandID)
		require.NoError(t, err)
		assert.Contains(t, key, apiKeyPrefix)
		assert.Equal(t, HashAPIKey(key), stored)
		assert.NotEqual(t, key, stored)
	})

	t.Run("requires subscription", func(t *testing.T) {
		repo := mocks.NewMockBrandRepository(t)
		repo.EXPECT().GetSubscription(mock.Anything, brandID).Return(nil, nil)
		_, err := NewBrandUseCase(repo, newTestGate(repo)).RegenerateAPIKey(context.Background(), brandID)
		require.ErrorIs(t, err, domain.ErrSubscriptionInactive)
	})
}

func TestHashAPIKeyIsStable(t *testing.T) {
	assert.Equal(t, HashAPIKey("ck_abc"), HashAPIKey("ck_abc"))
	assert.NotEqual(t, HashAPIKey("ck_abc"), HashAPIKey("ck_abd"))
	assert.Len(t, HashAPIKey("x"), 64)

	a, err := GenerateAPIKey()
	require.NoError(t, err)
	b, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
