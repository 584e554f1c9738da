package responses

import (
	"encoding/json"

	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// CostShareResponse is one party's share. Amounts are JSON numbers with two fraction digits.
type CostShareResponse struct {
	HealthCostWithNoCare json.Number `json:"healthCostWithNoCare" swaggertype:"number" example:"15000.00"`
	CareCost             json.Number `json:"careCost" swaggertype:"number" example:"2400.00"`
	Pension              json.Number `json:"pension" swaggertype:"number" example:"28365.00"`
}

// SocialInsuranceResponse is the body of a successful premium query
type SocialInsuranceResponse struct {
	EmployeeCost CostShareResponse `json:"employeeCost"`
	EmployerCost CostShareResponse `json:"employerCost"`
}

// NewSocialInsuranceResponse converts a calculation result to its wire shape
func NewSocialInsuranceResponse(result *business.PremiumResult) SocialInsuranceResponse {
	return SocialInsuranceResponse{
		EmployeeCost: newCostShareResponse(result.EmployeeCost),
		EmployerCost: newCostShareResponse(result.EmployerCost),
	}
}

func newCostShareResponse(share business.CostShare) CostShareResponse {
	return CostShareResponse{
		HealthCostWithNoCare: Money(share.HealthCostWithNoCare),
		CareCost:             Money(share.CareCost),
		Pension:              Money(share.Pension),
	}
}

// Money renders an amount as a JSON number fixed to the money scale.
func Money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(constants.MoneyScale))
}
