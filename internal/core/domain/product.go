package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusAvailable   ProductStatus = "AVAILABLE"
	ProductStatusUnavailable ProductStatus = "UNAVAILABLE"
)

// Product is owned by a brand. SKU is unique per brand and never changes
// after creation.
type Product struct {
	ID         uuid.UUID
	BrandID    uuid.UUID
	SKU        string
	Name       string
	BasePrice  decimal.Decimal
	Status     ProductStatus
	ProductURL string
	CreatedAt  time.Time
}
