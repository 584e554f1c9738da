package handlers

import (
	"github.com/asatex/kyuyokeisan-api/libs/go/interfaces"
	"github.com/asatex/kyuyokeisan-api/libs/go/services"
)

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	source                 interfaces.BracketSource
	socialInsuranceService interfaces.SocialInsuranceService

	sourceName string
	stage      string
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	Source     interfaces.BracketSource
	SourceName string
	Stage      string

	// Optional: built from Source when nil
	SocialInsuranceService interfaces.SocialInsuranceService
}

// NewHandlerFactory creates a new handler factory
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	service := config.SocialInsuranceService
	if service == nil {
		service = services.NewSocialInsuranceService(config.Source, services.NewPremiumCalculator())
	}

	return &HandlerFactory{
		source:                 config.Source,
		socialInsuranceService: service,
		sourceName:             config.SourceName,
		stage:                  config.Stage,
	}
}

// NewSocialInsuranceHandler creates the premium query handler
func (f *HandlerFactory) NewSocialInsuranceHandler() *SocialInsuranceHandler {
	return NewSocialInsuranceHandler(f.socialInsuranceService)
}

// NewHealthHandler creates the health handler
func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler(f.source, f.sourceName, f.stage)
}
