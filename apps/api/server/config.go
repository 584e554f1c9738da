package server

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/helpers"
	"github.com/gin-gonic/gin"
)

// Config is the runtime configuration of the API, read from the environment
type Config struct {
	Stage    string
	Port     string
	GinMode  string
	LogLevel string

	BracketSource    string
	BracketTablePath string

	DatabaseURL string
	DBHost      string
	DBName      string
	DBSSLMode   string
	DBMaxConns  int32
	DBMinConns  int32

	CORS CORSConfig

	RateLimitRPS   int
	RateLimitBurst int

	// TrustedProxies are the IPs or CIDRs whose X-Forwarded-For header is honoured
	TrustedProxies []string
}

// CORSConfig mirrors the CORS_* environment variables
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
}

// LoadConfig reads and validates the configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Stage:    getEnv("STAGE", helpers.StageLocal),
		Port:     getEnv("API_PORT", "8000"),
		GinMode:  getEnv("GIN_MODE", gin.DebugMode),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BracketSource:    strings.ToLower(getEnv("BRACKET_SOURCE", constants.BracketSourcePostgres)),
		BracketTablePath: getEnv("BRACKET_TABLE_PATH", constants.DefaultBracketTablePath),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBName:      os.Getenv("DB_NAME"),
		DBSSLMode:   getEnv("DB_SSLMODE", "require"),

		CORS: CORSConfig{
			AllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			AllowedMethods:   getEnvList("CORS_ALLOWED_METHODS", []string{"GET", "OPTIONS"}),
			AllowedHeaders:   getEnvList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}),
			ExposedHeaders:   getEnvList("CORS_EXPOSED_HEADERS", []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After", "X-Correlation-ID"}),
			AllowCredentials: os.Getenv("CORS_ALLOW_CREDENTIALS") == "true",
		},

		TrustedProxies: getEnvList("TRUSTED_PROXIES", nil),
	}

	var err error
	if cfg.DBMaxConns, err = getEnvInt32("DB_MAX_CONNS", 20); err != nil {
		return nil, err
	}
	if cfg.DBMinConns, err = getEnvInt32("DB_MIN_CONNS", 5); err != nil {
		return nil, err
	}
	rps, err := getEnvInt32("RATE_LIMIT_RPS", 100)
	if err != nil {
		return nil, err
	}
	burst, err := getEnvInt32("RATE_LIMIT_BURST", 200)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitRPS, cfg.RateLimitBurst = int(rps), int(burst)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combinations LoadConfig cannot default
func (c *Config) Validate() error {
	if !helpers.IsValidStage(c.Stage) {
		return fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s",
			c.Stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	switch c.BracketSource {
	case constants.BracketSourceFile:
		if c.BracketTablePath == "" {
			return fmt.Errorf("BRACKET_TABLE_PATH is required when BRACKET_SOURCE=%s", constants.BracketSourceFile)
		}
	case constants.BracketSourcePostgres:
		if helpers.IsDeployedStage(c.Stage) {
			if c.DBHost == "" || c.DBName == "" {
				return fmt.Errorf("DB_HOST and DB_NAME are required for stage %s", c.Stage)
			}
		} else if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for stage %s", c.Stage)
		}
	default:
		return fmt.Errorf("invalid BRACKET_SOURCE %q: must be %s or %s",
			c.BracketSource, constants.BracketSourcePostgres, constants.BracketSourceFile)
	}

	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("invalid TRUSTED_PROXIES entry %q: must be an IP or CIDR", proxy)
			}
		}
	}
	return nil
}

// IsDevelopment reports whether verbose request logging applies
func (c *Config) IsDevelopment() bool {
	return c.GinMode != gin.ReleaseMode
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt32(key string, defaultValue int32) (int32, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return int32(n), nil
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
