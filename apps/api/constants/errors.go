package constants

// Error messages returned by the API handlers
const (
	// Data integrity errors
	InconsistentBracketData = "premium bracket data is inconsistent"

	// Generic errors
	InternalServerError = "Internal server error"
)
