package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PayoutKind names the commission basis of a campaign.
type PayoutKind string

const (
	PayoutCPC  PayoutKind = "CPC"
	PayoutCPS  PayoutKind = "CPS"
	PayoutBoth PayoutKind = "BOTH"
)

// CommissionType selects how a CPS value is applied to a sale.
type CommissionType string

const (
	CommissionPercentage CommissionType = "PERCENTAGE"
	CommissionFixed      CommissionType = "FIXED"
)

// PayoutModel is one of CPC, CPS or Both. Only the values a model carries
// take part in payout.
type PayoutModel interface {
	Kind() PayoutKind
	isPayoutModel()
}

// CPC pays a fixed amount per click.
type CPC struct {
	Value decimal.Decimal
}

// CPS pays per sale, either a percentage of the sale price or a fixed
// amount.
type CPS struct {
	Value      decimal.Decimal
	Commission CommissionType
}

// Both adds a CPS and a CPC payout together.
type Both struct {
	CPS CPS
	CPC CPC
}

func (CPC) Kind() PayoutKind  { return PayoutCPC }
func (CPS) Kind() PayoutKind  { return PayoutCPS }
func (Both) Kind() PayoutKind { return PayoutBoth }

func (CPC) isPayoutModel()  {}
func (CPS) isPayoutModel()  {}
func (Both) isPayoutModel() {}

// PayoutTerms is the flat stored form of a payout model. Campaigns keep
// both values regardless of kind; the value a kind does not use is kept but
// never read.
type PayoutTerms struct {
	Kind       PayoutKind
	Commission CommissionType
	CPSValue   decimal.Decimal
	CPCValue   decimal.Decimal
}

// Model builds the PayoutModel described by t.
func (t PayoutTerms) Model() (PayoutModel, error) {
	cpc := CPC{Value: t.CPCValue}
	cps := CPS{Value: t.CPSValue, Commission: t.Commission}
	switch t.Kind {
	case PayoutCPC:
		if err := cpc.validate(); err != nil {
			return nil, err
		}
		// the commission is stored even though CPC never reads it
		if t.Commission != "" {
			if err := validateCommission(t.Commission); err != nil {
				return nil, err
			}
		}
		return cpc, nil
	case PayoutCPS:
		if err := cps.validate(); err != nil {
			return nil, err
		}
		return cps, nil
	case PayoutBoth:
		if err := cps.validate(); err != nil {
			return nil, err
		}
		if err := cpc.validate(); err != nil {
			return nil, err
		}
		return Both{CPS: cps, CPC: cpc}, nil
	default:
		return nil, fmt.Errorf("%w: unknown payout model %q", ErrInvalidInput, t.Kind)
	}
}

func (c CPC) validate() error {
	if c.Value.IsNegative() {
		return fmt.Errorf("%w: negative cpc value", ErrInvalidInput)
	}
	return nil
}

func (c CPS) validate() error {
	if c.Value.IsNegative() {
		return fmt.Errorf("%w: negative cps value", ErrInvalidInput)
	}
	return validateCommission(c.Commission)
}

func validateCommission(c CommissionType) error {
	switch c {
	case CommissionPercentage, CommissionFixed:
		return nil
	default:
		return fmt.Errorf("%w: unknown commission type %q", ErrInvalidInput, c)
	}
}
