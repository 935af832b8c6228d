package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creatorlink/internal/config"
	"creatorlink/internal/core/domain"
	"creatorlink/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenewBrand(t *testing.T) {
	brandID := uuid.New()
	expires := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	brands := mocks.NewMockBrandUseCase(t)
	brands.EXPECT().Renew(mock.Anything, brandID, 30*24*time.Hour).
		Return(&domain.Subscription{BrandID: brandID, ExpiresAt: expires}, nil)

	var out bytes.Buffer
	require.NoError(t, renewBrand(context.Background(), brands, brandID, 30*24*time.Hour, &out, discardLogger()))
	assert.Equal(t, "expires at: 2024-06-30T12:00:00Z\n", out.String())
}

func TestRenewBrandFailure(t *testing.T) {
	brands := mocks.NewMockBrandUseCase(t)
	brands.EXPECT().Renew(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	err := renewBrand(context.Background(), brands, uuid.New(), time.Hour, io.Discard, discardLogger())
	require.ErrorContains(t, err, "boom")
}

func TestRenewCmdValidatesFlags(t *testing.T) {
	deps := func() (config.Config, *slog.Logger) { return config.Config{}, discardLogger() }
	cases := map[string][]string{
		"bad brand id":  {"--brand-id", "nope"},
		"zero period":   {"--brand-id", uuid.NewString(), "--period", "0s"},
		"negative term": {"--brand-id", uuid.NewString(), "--period", "-1h"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cmd := renewCmd(deps)
			cmd.SetArgs(args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			require.ErrorIs(t, cmd.Execute(), domain.ErrInvalidInput)
		})
	}
}
