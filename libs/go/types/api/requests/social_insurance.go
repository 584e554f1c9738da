package requests

// SocialInsuranceQueryRequest is the query string of GET /socialInsuranceQuery
type SocialInsuranceQueryRequest struct {
	MonthlySalary int64 `form:"monthlySalary" binding:"required,min=1,max=10000000" example:"650000"`
	Age           int   `form:"age" binding:"required,min=1,max=120" example:"45"`
}
