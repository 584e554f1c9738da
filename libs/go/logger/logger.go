package logger

import (
	"os"
	"strings"

	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It stays nil until InitLogger runs; the
// package helpers fall back to a no-op logger in that case.
var Log *zap.Logger

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level       string `json:"level"`
	Stage       string `json:"stage"`
	EnableJSON  bool   `json:"enable_json"`
	EnableColor bool   `json:"enable_color"`

	// Output receives encoded entries. Defaults to stderr.
	Output zapcore.WriteSyncer `json:"-"`
}

// structured reports whether entries are written as JSON for log aggregation.
func (c LoggerConfig) structured() bool {
	return c.EnableJSON || c.Stage == constants.ProdEnvironment
}

// InitLogger sets Log for the given stage. Deployed stages log JSON; the
// level comes from LOG_LEVEL.
func InitLogger(stage string) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	InitLoggerWithConfig(LoggerConfig{
		Level:       level,
		Stage:       stage,
		EnableJSON:  stage == constants.ProdEnvironment,
		EnableColor: stage != constants.ProdEnvironment,
	})
}

// InitLoggerWithConfig sets Log from an explicit configuration.
func InitLoggerWithConfig(config LoggerConfig) {
	Log = NewLogger(config)
}

// NewLogger builds a logger without touching Log.
func NewLogger(config LoggerConfig) *zap.Logger {
	level := parseLevel(config.Level)

	out := config.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	var (
		encoder zapcore.Encoder
		opts    = []zap.Option{zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	)
	if config.structured() {
		encoder = zapcore.NewJSONEncoder(jsonEncoderConfig())
		opts = append(opts, zap.Fields(
			zap.String("service", constants.ServiceName),
			zap.String("stage", config.Stage),
		))
		// Deployed stages attach stack traces only at debug level.
		if level <= zapcore.DebugLevel {
			opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
		}
	} else {
		encoder = zapcore.NewConsoleEncoder(consoleEncoderConfig(config.EnableColor))
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	return zap.New(zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level)), opts...)
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func consoleEncoderConfig(color bool) zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

// parseLevel maps LOG_LEVEL values onto zap levels. Unknown values mean info.
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func current() *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}
	return Log
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zapcore.Field) {
	current().Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zapcore.Field) {
	current().Error(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zapcore.Field) {
	current().Debug(msg, fields...)
}

// Fatal logs a message at FatalLevel and exits. Before InitLogger the message
// is dropped but the process still exits.
func Fatal(msg string, fields ...zapcore.Field) {
	if Log == nil {
		os.Exit(1)
	}
	Log.Fatal(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return current().Sync()
}
