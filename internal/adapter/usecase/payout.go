package usecase

import (
	"github.com/shopspring/decimal"

	"creatorlink/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputePayout returns the creator payout for a set of sales and a click
// total under model. CPS adds a commission per sale, CPC adds clicks times
// the per-click value and Both adds the two. A nil model pays nothing.
func ComputePayout(model domain.PayoutModel, salePrices []decimal.Decimal, clicks int64) decimal.Decimal {
	switch m := model.(type) {
	case domain.CPC:
		return cpcPayout(m, clicks)
	case domain.CPS:
		return cpsPayout(m, salePrices)
	case domain.Both:
		return cpsPayout(m.CPS, salePrices).Add(cpcPayout(m.CPC, clicks))
	default:
		return decimal.Zero
	}
}

func cpsPayout(m domain.CPS, salePrices []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, price := range salePrices {
		if m.Commission == domain.CommissionPercentage {
			total = total.Add(price.Mul(m.Value).Div(hundred))
		} else {
			total = total.Add(m.Value)
		}
	}
	return total
}

func cpcPayout(m domain.CPC, clicks int64) decimal.Decimal {
	if clicks <= 0 {
		return decimal.Zero
	}
	return m.Value.Mul(decimal.NewFromInt(clicks))
}
