package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockBracketSourceForTest creates a new mock BracketSource for testing
func NewMockBracketSourceForTest(t *testing.T) *MockBracketSource {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBracketSource(ctrl)
}

// NewMockSocialInsuranceServiceForTest creates a new mock SocialInsuranceService for testing
func NewMockSocialInsuranceServiceForTest(t *testing.T) *MockSocialInsuranceService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSocialInsuranceService(ctrl)
}
