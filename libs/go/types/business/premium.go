package business

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PremiumBracket is one row of the rate table: the monthly premium totals that apply
// to every salary in the half-open range [MinAmount, MaxAmount).
type PremiumBracket struct {
	ID           int64           `json:"id"`
	Grade        int32           `json:"grade"`
	MinAmount    int64           `json:"min_amount"`
	MaxAmount    int64           `json:"max_amount"`
	HealthNoCare decimal.Decimal `json:"health_no_care"`
	HealthCare   decimal.Decimal `json:"health_care"`
	Pension      decimal.Decimal `json:"pension"`
}

// Contains reports whether amount falls inside the bracket's half-open interval.
func (b PremiumBracket) Contains(amount int64) bool {
	return amount >= b.MinAmount && amount < b.MaxAmount
}

// CareTotal is the monthly nursing-care premium: the difference between the health
// premium with and without care insurance.
func (b PremiumBracket) CareTotal() decimal.Decimal {
	return b.HealthCare.Sub(b.HealthNoCare)
}

// Validate checks the row-level invariants of the rate table.
func (b PremiumBracket) Validate() error {
	if b.MinAmount >= b.MaxAmount {
		return fmt.Errorf("bracket %d: min_amount %d must be below max_amount %d", b.Grade, b.MinAmount, b.MaxAmount)
	}
	if b.HealthNoCare.IsNegative() || b.HealthCare.IsNegative() || b.Pension.IsNegative() {
		return fmt.Errorf("bracket %d: premium totals must not be negative", b.Grade)
	}
	if b.HealthCare.LessThan(b.HealthNoCare) {
		return fmt.Errorf("bracket %d: health_care %s is below health_no_care %s",
			b.Grade, b.HealthCare.StringFixed(2), b.HealthNoCare.StringFixed(2))
	}
	return nil
}

// CostShare is the part of each premium borne by one party.
type CostShare struct {
	HealthCostWithNoCare decimal.Decimal `json:"health_cost_with_no_care"`
	CareCost             decimal.Decimal `json:"care_cost"`
	Pension              decimal.Decimal `json:"pension"`
}

// Total sums the three components of the share.
func (s CostShare) Total() decimal.Decimal {
	return s.HealthCostWithNoCare.Add(s.CareCost).Add(s.Pension)
}

// PremiumResult is the employee/employer split for a single query.
type PremiumResult struct {
	EmployeeCost CostShare `json:"employee_cost"`
	EmployerCost CostShare `json:"employer_cost"`
}
