package middleware

import (
	"net/http"

	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvalidQueryMessage is the top-level error returned with query validation failures
const InvalidQueryMessage = "invalid query parameters"

// ValidatedQueryKey is the gin context key holding the parsed query values
const ValidatedQueryKey = "validatedQuery"

// SocialInsuranceQueryValidation validates GET /socialInsuranceQuery
var SocialInsuranceQueryValidation = ValidationConfig{
	AllowUnknownFields: true,
	Rules: []ValidationRule{
		{
			Field:    "monthlySalary",
			Required: true,
			Min:      int64Ptr(constants.MinMonthlySalary),
			Max:      int64Ptr(constants.MaxMonthlySalary),
		},
		{
			Field:    "age",
			Required: true,
			Min:      int64Ptr(constants.MinAge),
			Max:      int64Ptr(constants.MaxAge),
		},
	},
}

// ValidateQueryParams validates query parameters against the config and aborts with 400 on failure
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				raw[key] = values[0]
			}
		}

		parsed, errors := validateFields(raw, config.Rules, config.AllowUnknownFields)
		if len(errors) > 0 {
			LogWithCorrelationID(c.Request.Context(), logger.ComponentMiddleware).Info("Query validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Any("errors", errors),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, responses.ValidationErrorResponse{
				Error:  InvalidQueryMessage,
				Errors: errors,
			})
			return
		}

		c.Set(ValidatedQueryKey, parsed)
		c.Next()
	}
}

// GetValidatedQuery returns the values parsed by ValidateQueryParams, or false when it did not run
func GetValidatedQuery(c *gin.Context) (ValidatedQuery, bool) {
	value, exists := c.Get(ValidatedQueryKey)
	if !exists {
		return nil, false
	}
	query, ok := value.(ValidatedQuery)
	return query, ok
}
