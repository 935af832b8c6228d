package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brand owns products and campaigns. Only the hash of its API key is kept.
type Brand struct {
	ID         uuid.UUID
	Name       string
	APIKeyHash string
	CreatedAt  time.Time
}

// Subscription is the brand's paid or trial access window.
type Subscription struct {
	BrandID       uuid.UUID
	StartedAt     time.Time
	ExpiresAt     time.Time
	UsedFreeTrial bool
}
