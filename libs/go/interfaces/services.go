package interfaces

import (
	"context"

	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
)

// BracketLookup resolves a monthly salary to the premium bracket that contains it
type BracketLookup interface {
	FindBracket(ctx context.Context, amount int64) (*business.PremiumBracket, error)
}

// BracketSource is a BracketLookup backed by a readable rate table
type BracketSource interface {
	BracketLookup
	ListBrackets(ctx context.Context) ([]business.PremiumBracket, error)
	Ping(ctx context.Context) error
}

// PremiumCalculator derives the employee/employer split from a bracket
type PremiumCalculator interface {
	Calculate(bracket business.PremiumBracket, age *int) (*business.PremiumResult, error)
}

// SocialInsuranceService answers premium queries end to end
type SocialInsuranceService interface {
	SocialInsuranceQuery(ctx context.Context, monthlySalary int64, age int) (*business.PremiumResult, error)
}
