package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClickEvent is a daily click counter. There is at most one row per
// (MemberID, Platform, Day) and Count only grows.
type ClickEvent struct {
	ID       uuid.UUID
	MemberID uuid.UUID
	Platform Platform
	Day      time.Time // midnight UTC
	Count    int64
}

// SaleEvent is an append-only sale fact. Platform is copied from the
// referral code when the sale is recorded.
type SaleEvent struct {
	ID                uuid.UUID
	MemberID          uuid.UUID
	CampaignProductID uuid.UUID
	Platform          Platform
	SalePrice         decimal.Decimal
	PurchasedAt       time.Time
	IdempotencyKey    string // optional, empty when the caller sent none
}

// DayBucket truncates t to midnight UTC. It is the date component of the
// click counter key.
func DayBucket(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
