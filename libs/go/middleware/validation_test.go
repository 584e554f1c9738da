package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQueryParams_SocialInsurance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedErrors []ValidationError
	}{
		{
			name:           "valid query",
			query:          "monthlySalary=650000&age=45",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bounds are inclusive",
			query:          "monthlySalary=10000000&age=1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown parameters are ignored",
			query:          "monthlySalary=1&age=120&lang=ja",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero salary",
			query:          "monthlySalary=0&age=30",
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []ValidationError{{Field: "monthlySalary", Message: "must be at least 1"}},
		},
		{
			name:           "salary above ceiling",
			query:          "monthlySalary=10000001&age=30",
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []ValidationError{{Field: "monthlySalary", Message: "must be at most 10000000"}},
		},
		{
			name:           "age 121",
			query:          "monthlySalary=650000&age=121",
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []ValidationError{{Field: "age", Message: "must be at most 120"}},
		},
		{
			name:           "missing parameters",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []ValidationError{
				{Field: "monthlySalary", Message: "monthlySalary is required"},
				{Field: "age", Message: "age is required"},
			},
		},
		{
			name:           "non-integer salary",
			query:          "monthlySalary=650000.5&age=30",
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []ValidationError{{Field: "monthlySalary", Message: "must be an integer"}},
		},
		{
			name:           "non-numeric age",
			query:          "monthlySalary=650000&age=forty",
			expectedStatus: http.StatusBadRequest,
			expectedErrors: []ValidationError{{Field: "age", Message: "must be an integer"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			var validated ValidatedQuery
			router.GET("/socialInsuranceQuery", ValidateQueryParams(SocialInsuranceQueryValidation), func(c *gin.Context) {
				var ok bool
				validated, ok = GetValidatedQuery(c)
				require.True(t, ok)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/socialInsuranceQuery?"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Len(t, validated, 2)
				assert.Contains(t, validated, "monthlySalary")
				assert.Contains(t, validated, "age")
				return
			}

			var body responses.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, InvalidQueryMessage, body.Error)
			assert.Equal(t, tt.expectedErrors, body.Errors)
		})
	}
}

func TestValidateFields_StrictRules(t *testing.T) {
	rules := []ValidationRule{
		{Field: "page", Min: int64Ptr(1)},
		{Field: "limit", Max: int64Ptr(100)},
	}

	parsed, errs := validateFields(map[string]string{"page": " 3 ", "limit": "100"}, rules, false)
	assert.Empty(t, errs)
	assert.Equal(t, ValidatedQuery{"page": 3, "limit": 100}, parsed)

	parsed, errs = validateFields(map[string]string{}, rules, false)
	assert.Empty(t, errs)
	assert.Empty(t, parsed)

	_, errs = validateFields(map[string]string{"page": "0", "limit": "101", "extra": "1"}, rules, false)
	assert.ElementsMatch(t, []ValidationError{
		{Field: "page", Message: "must be at least 1"},
		{Field: "limit", Message: "must be at most 100"},
		{Field: "extra", Message: "unknown field"},
	}, errs)
}

func TestGetValidatedQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var (
		query ValidatedQuery
		ok    bool
	)
	router.GET("/plain", func(c *gin.Context) {
		query, ok = GetValidatedQuery(c)
		c.Status(http.StatusOK)
	})
	router.GET("/validated", ValidateQueryParams(SocialInsuranceQueryValidation), func(c *gin.Context) {
		query, ok = GetValidatedQuery(c)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/plain?monthlySalary=650000&age=45", nil))
	assert.False(t, ok)
	assert.Nil(t, query)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/validated?monthlySalary=650000&age=45", nil))
	require.True(t, ok)
	assert.Equal(t, ValidatedQuery{"monthlySalary": 650000, "age": 45}, query)
}
