package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asatex/kyuyokeisan-api/libs/go/types/api/responses"
)

// ValidationRule defines a single integer query parameter
type ValidationRule struct {
	Field    string // Field name to validate
	Required bool   // Whether the field is required
	Min      *int64 // Inclusive lower bound
	Max      *int64 // Inclusive upper bound
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	AllowUnknownFields bool // Whether to allow fields not in rules
}

// ValidationError describes one rejected field
type ValidationError = responses.FieldError

// ValidatedQuery holds the query values accepted by ValidateQueryParams, keyed by field
type ValidatedQuery map[string]int64

// validateFields checks raw query values against the rules and returns the parsed values
func validateFields(data map[string]string, rules []ValidationRule, allowUnknown bool) (ValidatedQuery, []ValidationError) {
	var errors []ValidationError
	parsed := make(ValidatedQuery, len(rules))
	known := make(map[string]bool, len(rules))

	for _, rule := range rules {
		known[rule.Field] = true
		raw, exists := data[rule.Field]
		raw = strings.TrimSpace(raw)

		if !exists || raw == "" {
			if rule.Required {
				errors = append(errors, ValidationError{
					Field:   rule.Field,
					Message: fmt.Sprintf("%s is required", rule.Field),
				})
			}
			continue
		}

		value, err := parseInt(raw, rule)
		if err != nil {
			errors = append(errors, ValidationError{Field: rule.Field, Message: err.Error()})
			continue
		}
		parsed[rule.Field] = value
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				errors = append(errors, ValidationError{Field: field, Message: "unknown field"})
			}
		}
	}

	return parsed, errors
}

func parseInt(raw string, rule ValidationRule) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	if rule.Min != nil && n < *rule.Min {
		return 0, fmt.Errorf("must be at least %d", *rule.Min)
	}
	if rule.Max != nil && n > *rule.Max {
		return 0, fmt.Errorf("must be at most %d", *rule.Max)
	}
	return n, nil
}

func int64Ptr(n int64) *int64 {
	return &n
}
