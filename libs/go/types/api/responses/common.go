package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError describes why a single request field was rejected
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 400 when query parameters fail validation
type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status string `json:"status"`
	Stage  string `json:"stage,omitempty"`
	Source string `json:"source,omitempty"`
	Error  string `json:"error,omitempty"`
}
