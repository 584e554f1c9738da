package services

import (
	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// splitRatio is the share of every premium borne by each party.
var splitRatio = decimal.RequireFromString("0.5")

// PremiumCalculator splits the monthly premiums of a bracket between employee and employer.
// It holds no state and is safe for concurrent use.
type PremiumCalculator struct{}

// NewPremiumCalculator creates a new premium calculator
func NewPremiumCalculator() *PremiumCalculator {
	return &PremiumCalculator{}
}

// Calculate derives both cost shares for the bracket. Care insurance applies only
// when age is known and at least 40. A bracket whose care-inclusive health premium
// is below the care-exclusive one is rejected without a partial result.
func (c *PremiumCalculator) Calculate(bracket business.PremiumBracket, age *int) (*business.PremiumResult, error) {
	if bracket.HealthCare.LessThan(bracket.HealthNoCare) {
		return nil, errors.Wrapf(ErrInvalidBracket, "grade %d: health_care %s is below health_no_care %s",
			bracket.Grade, bracket.HealthCare.StringFixed(constants.MoneyScale), bracket.HealthNoCare.StringFixed(constants.MoneyScale))
	}

	careCost := decimal.Zero
	if IsCareEligible(age) {
		careCost = bracket.CareTotal()
	}

	return &business.PremiumResult{
		EmployeeCost: splitShare(bracket.HealthNoCare, careCost, bracket.Pension),
		EmployerCost: splitShare(bracket.HealthNoCare, careCost, bracket.Pension),
	}, nil
}

// IsCareEligible reports whether nursing-care insurance applies at the given age.
func IsCareEligible(age *int) bool {
	return age != nil && *age >= constants.CareInsuranceMinAge
}

func splitShare(healthNoCare, careCost, pension decimal.Decimal) business.CostShare {
	return business.CostShare{
		HealthCostWithNoCare: half(healthNoCare),
		CareCost:             half(careCost),
		Pension:              half(pension),
	}
}

// half rounds to the money scale with ties away from zero.
func half(total decimal.Decimal) decimal.Decimal {
	return total.Mul(splitRatio).Round(constants.MoneyScale)
}
