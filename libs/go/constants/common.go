package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name reported in structured logs
	ServiceName = "kyuyokeisan-api"

	// Rate-table sources
	BracketSourcePostgres = "postgres"
	BracketSourceFile     = "file"

	// Rate table shipped with the repository
	DefaultBracketTablePath = "config/premium_brackets.yaml"
)
