package logger

import (
	"go.uber.org/zap"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI        LogComponent = "api"
	ComponentDB         LogComponent = "database"
	ComponentCalculator LogComponent = "calculator"
	ComponentMiddleware LogComponent = "middleware"
	ComponentServer     LogComponent = "server"
	ComponentCLI        LogComponent = "cli"
)

// ForComponent returns a child of the global logger tagged with the component.
// A no-op logger is returned when the global logger has not been initialized,
// so library code stays usable from tests and the CLI.
func ForComponent(component LogComponent) *zap.Logger {
	return current().With(zap.String("component", string(component)))
}
