package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/asatex/kyuyokeisan-api/libs/go/middleware"
	"github.com/asatex/kyuyokeisan-api/libs/go/mocks"
	"github.com/asatex/kyuyokeisan-api/libs/go/services"
	"github.com/asatex/kyuyokeisan-api/libs/go/testutil"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
	"github.com/asatex/kyuyokeisan-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
}

func premiumBracket() business.PremiumBracket {
	return business.PremiumBracket{
		ID:           35,
		Grade:        35,
		MinAmount:    630000,
		MaxAmount:    670000,
		HealthNoCare: decimal.RequireFromString("30000.00"),
		HealthCare:   decimal.RequireFromString("34800.00"),
		Pension:      decimal.RequireFromString("56730.00"),
	}
}

func TestSocialInsuranceHandler_SocialInsuranceQuery(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(m *mocks.MockSocialInsuranceService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "success",
			query: "monthlySalary=650000&age=45",
			setupMock: func(m *mocks.MockSocialInsuranceService) {
				result, _ := services.NewPremiumCalculator().Calculate(premiumBracket(), intPtr(45))
				m.EXPECT().SocialInsuranceQuery(gomock.Any(), int64(650000), 45).Return(result, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"employeeCost":{"healthCostWithNoCare":15000.00,"careCost":2400.00,"pension":28365.00},
				"employerCost":{"healthCostWithNoCare":15000.00,"careCost":2400.00,"pension":28365.00}}`,
		},
		{
			name:  "lookup miss",
			query: "monthlySalary=12345&age=30",
			setupMock: func(m *mocks.MockSocialInsuranceService) {
				m.EXPECT().SocialInsuranceQuery(gomock.Any(), int64(12345), 30).Return(nil, services.NewBracketNotFoundError(12345))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no premium bracket found for monthly salary 12345"}`,
		},
		{
			name:  "defective bracket",
			query: "monthlySalary=650000&age=45",
			setupMock: func(m *mocks.MockSocialInsuranceService) {
				m.EXPECT().SocialInsuranceQuery(gomock.Any(), int64(650000), 45).Return(nil, services.ErrInvalidBracket)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"premium bracket data is inconsistent"}`,
		},
		{
			name:  "lookup failure",
			query: "monthlySalary=650000&age=45",
			setupMock: func(m *mocks.MockSocialInsuranceService) {
				m.EXPECT().SocialInsuranceQuery(gomock.Any(), int64(650000), 45).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
		{
			name:           "binding rejects out of range age",
			query:          "monthlySalary=650000&age=121",
			setupMock:      func(m *mocks.MockSocialInsuranceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid query parameters","errors":[{"field":"age","message":"must be at most 120"}]}`,
		},
		{
			name:           "binding rejects missing salary",
			query:          "age=30",
			setupMock:      func(m *mocks.MockSocialInsuranceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid query parameters","errors":[{"field":"monthlySalary","message":"monthlySalary is required"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockSocialInsuranceServiceForTest(t)
			tt.setupMock(mockService)
			handler := NewSocialInsuranceHandler(mockService)

			c, w := testutil.TestContext(t)
			c.Request = httptest.NewRequest(http.MethodGet, "/socialInsuranceQuery?"+tt.query, nil)

			handler.SocialInsuranceQuery(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSocialInsuranceHandler_NonNumericBindingError(t *testing.T) {
	handler := NewSocialInsuranceHandler(mocks.NewMockSocialInsuranceServiceForTest(t))

	c, w := testutil.TestContext(t)
	c.Request = httptest.NewRequest(http.MethodGet, "/socialInsuranceQuery?monthlySalary=abc&age=30", nil)

	handler.SocialInsuranceQuery(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body responses.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, middleware.InvalidQueryMessage, body.Error)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "query", body.Errors[0].Field)
}

// newTestRouter wires the real service and middleware chain over an in-memory table.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	defective := premiumBracket()
	defective.Grade = 99
	defective.MinAmount, defective.MaxAmount = 900000, 910000
	defective.HealthCare = decimal.RequireFromString("1.00")

	table, err := services.NewBracketTable([]business.PremiumBracket{premiumBracket(), defective})
	require.NoError(t, err)

	factory := NewHandlerFactory(HandlerFactoryConfig{Source: table, SourceName: "file", Stage: "local"})
	siHandler := factory.NewSocialInsuranceHandler()

	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	router.GET("/socialInsuranceQuery",
		middleware.ValidateQueryParams(middleware.SocialInsuranceQueryValidation),
		siHandler.SocialInsuranceQuery)
	return router
}

func TestSocialInsuranceQuery_EndToEnd(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "age 35",
			query:          "monthlySalary=650000&age=35",
			expectedStatus: http.StatusOK,
			expectedBody: `{"employeeCost":{"healthCostWithNoCare":15000.00,"careCost":0.00,"pension":28365.00},
				"employerCost":{"healthCostWithNoCare":15000.00,"careCost":0.00,"pension":28365.00}}`,
		},
		{
			name:           "age 45",
			query:          "monthlySalary=650000&age=45",
			expectedStatus: http.StatusOK,
			expectedBody: `{"employeeCost":{"healthCostWithNoCare":15000.00,"careCost":2400.00,"pension":28365.00},
				"employerCost":{"healthCostWithNoCare":15000.00,"careCost":2400.00,"pension":28365.00}}`,
		},
		{
			name:           "lower bound inclusive",
			query:          "monthlySalary=630000&age=35",
			expectedStatus: http.StatusOK,
			expectedBody: `{"employeeCost":{"healthCostWithNoCare":15000.00,"careCost":0.00,"pension":28365.00},
				"employerCost":{"healthCostWithNoCare":15000.00,"careCost":0.00,"pension":28365.00}}`,
		},
		{
			name:           "upper bound exclusive",
			query:          "monthlySalary=670000&age=35",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no premium bracket found for monthly salary 670000"}`,
		},
		{
			name:           "zero salary rejected before lookup",
			query:          "monthlySalary=0&age=30",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid query parameters","errors":[{"field":"monthlySalary","message":"must be at least 1"}]}`,
		},
		{
			name:           "age 121 rejected before lookup",
			query:          "monthlySalary=650000&age=121",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid query parameters","errors":[{"field":"age","message":"must be at most 120"}]}`,
		},
		{
			name:           "defective row surfaces per request",
			query:          "monthlySalary=905000&age=45",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"premium bracket data is inconsistent"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.PerformRequest(router, http.MethodGet, "/socialInsuranceQuery?"+tt.query, nil)

			testutil.AssertStatusCode(t, w, tt.expectedStatus)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.CorrelationIDHeader))
		})
	}
}

func TestSocialInsuranceQuery_RawNumberFormatting(t *testing.T) {
	router := newTestRouter(t)

	w := testutil.PerformRequest(router, http.MethodGet, "/socialInsuranceQuery?monthlySalary=650000&age=35", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthCostWithNoCare":15000.00`)
	assert.Contains(t, w.Body.String(), `"careCost":0.00`)
}

func intPtr(i int) *int {
	return &i
}

func TestSocialInsuranceHandler_UsesValidatedQuery(t *testing.T) {
	mockService := mocks.NewMockSocialInsuranceServiceForTest(t)
	result, err := services.NewPremiumCalculator().Calculate(premiumBracket(), intPtr(45))
	require.NoError(t, err)
	mockService.EXPECT().SocialInsuranceQuery(gomock.Any(), int64(650000), 45).Return(result, nil)

	handler := NewSocialInsuranceHandler(mockService)
	c, w := testutil.TestContext(t)
	// The raw query disagrees with what the middleware accepted; the handler must not rebind it.
	c.Request = httptest.NewRequest(http.MethodGet, "/socialInsuranceQuery?monthlySalary=1&age=2", nil)
	c.Set(middleware.ValidatedQueryKey, middleware.ValidatedQuery{"monthlySalary": 650000, "age": 45})

	handler.SocialInsuranceQuery(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
