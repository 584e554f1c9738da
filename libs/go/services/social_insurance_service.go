package services

import (
	"context"

	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/interfaces"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SocialInsuranceService answers premium queries: bracket lookup, then calculation
type SocialInsuranceService struct {
	lookup     interfaces.BracketLookup
	calculator interfaces.PremiumCalculator
	logger     *zap.Logger
}

// NewSocialInsuranceService creates a new social insurance service
func NewSocialInsuranceService(lookup interfaces.BracketLookup, calculator interfaces.PremiumCalculator) *SocialInsuranceService {
	if calculator == nil {
		calculator = NewPremiumCalculator()
	}
	return &SocialInsuranceService{
		lookup:     lookup,
		calculator: calculator,
		logger:     logger.ForComponent(logger.ComponentCalculator),
	}
}

// SocialInsuranceQuery computes the employee and employer premiums for a monthly salary and age
func (s *SocialInsuranceService) SocialInsuranceQuery(ctx context.Context, monthlySalary int64, age int) (*business.PremiumResult, error) {
	_, result, err := s.Quote(ctx, monthlySalary, age)
	return result, err
}

// Quote is SocialInsuranceQuery that also returns the bracket the salary resolved to
func (s *SocialInsuranceService) Quote(ctx context.Context, monthlySalary int64, age int) (*business.PremiumBracket, *business.PremiumResult, error) {
	if monthlySalary < constants.MinMonthlySalary || monthlySalary > constants.MaxMonthlySalary {
		return nil, nil, errors.Wrapf(ErrInvalidQuery, "monthly salary %d is outside [%d, %d]",
			monthlySalary, constants.MinMonthlySalary, constants.MaxMonthlySalary)
	}
	if age < constants.MinAge || age > constants.MaxAge {
		return nil, nil, errors.Wrapf(ErrInvalidQuery, "age %d is outside [%d, %d]",
			age, constants.MinAge, constants.MaxAge)
	}

	bracket, err := s.lookup.FindBracket(ctx, monthlySalary)
	if err != nil {
		if errors.Is(err, ErrBracketNotFound) {
			s.logger.Info("No premium bracket for salary", zap.Int64("monthly_salary", monthlySalary))
			return nil, nil, err
		}
		s.logger.Error("Premium bracket lookup failed",
			zap.Int64("monthly_salary", monthlySalary),
			zap.Error(err))
		return nil, nil, errors.Wrap(err, "failed to look up premium bracket")
	}

	result, err := s.calculator.Calculate(*bracket, &age)
	if err != nil {
		s.logger.Error("Premium calculation rejected bracket",
			zap.Int32("grade", bracket.Grade),
			zap.Int64("monthly_salary", monthlySalary),
			zap.Error(err))
		return nil, nil, err
	}

	s.logger.Debug("Calculated social insurance premiums",
		zap.Int64("monthly_salary", monthlySalary),
		zap.Int("age", age),
		zap.Int32("grade", bracket.Grade),
		zap.String("employee_total", result.EmployeeCost.Total().StringFixed(constants.MoneyScale)))

	return bracket, result, nil
}
