package handlers

import (
	"net/http"

	"github.com/asatex/kyuyokeisan-api/libs/go/interfaces"
	"github.com/asatex/kyuyokeisan-api/libs/go/middleware"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/requests"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
)

// SocialInsuranceHandler serves premium queries
type SocialInsuranceHandler struct {
	service interfaces.SocialInsuranceService
}

// NewSocialInsuranceHandler creates a new social insurance handler
func NewSocialInsuranceHandler(service interfaces.SocialInsuranceService) *SocialInsuranceHandler {
	return &SocialInsuranceHandler{service: service}
}

// SocialInsuranceQuery godoc
// @Summary Calculate social insurance premiums
// @Description Returns the employee and employer shares of the monthly health, nursing-care and pension premiums for a salary. Care premiums apply from age 40.
// @Tags social-insurance
// @Produce json
// @Param monthlySalary query int true "Monthly salary in yen" minimum(1) maximum(10000000)
// @Param age query int true "Age in years" minimum(1) maximum(120)
// @Success 200 {object} responses.SocialInsuranceResponse
// @Failure 400 {object} responses.ValidationErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /socialInsuranceQuery [get]
func (h *SocialInsuranceHandler) SocialInsuranceQuery(c *gin.Context) {
	req, ok := validatedRequest(c)
	if !ok {
		if err := c.ShouldBindQuery(&req); err != nil {
			sendBindingError(c, err)
			return
		}
	}

	result, err := h.service.SocialInsuranceQuery(c.Request.Context(), req.MonthlySalary, req.Age)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.NewSocialInsuranceResponse(result))
}

// validatedRequest reuses the values ValidateQueryParams already parsed. Without it the
// handler binds the query itself.
func validatedRequest(c *gin.Context) (requests.SocialInsuranceQueryRequest, bool) {
	query, ok := middleware.GetValidatedQuery(c)
	if !ok {
		return requests.SocialInsuranceQueryRequest{}, false
	}
	return requests.SocialInsuranceQueryRequest{
		MonthlySalary: query["monthlySalary"],
		Age:           int(query["age"]),
	}, true
}
