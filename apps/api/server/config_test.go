package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"STAGE", "API_PORT", "GIN_MODE", "BRACKET_SOURCE", "BRACKET_TABLE_PATH",
		"DATABASE_URL", "DB_HOST", "DB_NAME", "DB_SSLMODE", "DB_MAX_CONNS", "DB_MIN_CONNS",
		"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS", "CORS_EXPOSED_HEADERS",
		"CORS_ALLOW_CREDENTIALS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUSTED_PROXIES",
	} {
		t.Setenv(key, "")
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"DATABASE_URL": "postgres://localhost/premiums"})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Stage)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "postgres", cfg.BracketSource)
	assert.Equal(t, int32(20), cfg.DBMaxConns)
	assert.Equal(t, int32(5), cfg.DBMinConns)
	assert.Equal(t, 100, cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"STAGE":                "prod",
		"GIN_MODE":             "release",
		"BRACKET_SOURCE":       "FILE",
		"BRACKET_TABLE_PATH":   "/etc/premiums.yaml",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example ,",
		"RATE_LIMIT_RPS":       "5",
		"RATE_LIMIT_BURST":     "10",
		"TRUSTED_PROXIES":      "10.0.0.0/8, 192.168.1.10",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.BracketSource)
	assert.Equal(t, "/etc/premiums.yaml", cfg.BracketTablePath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5, cfg.RateLimitRPS)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.TrustedProxies)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errorString string
	}{
		{
			name:        "unknown stage",
			env:         map[string]string{"STAGE": "staging"},
			errorString: `invalid STAGE "staging"`,
		},
		{
			name:        "unknown source",
			env:         map[string]string{"BRACKET_SOURCE": "redis"},
			errorString: `invalid BRACKET_SOURCE "redis"`,
		},
		{
			name:        "local postgres without url",
			env:         map[string]string{},
			errorString: "DATABASE_URL is required for stage local",
		},
		{
			name:        "deployed postgres without host",
			env:         map[string]string{"STAGE": "dev"},
			errorString: "DB_HOST and DB_NAME are required for stage dev",
		},
		{
			name:        "non-numeric pool size",
			env:         map[string]string{"DATABASE_URL": "postgres://x", "DB_MAX_CONNS": "many"},
			errorString: `invalid DB_MAX_CONNS "many"`,
		},
		{
			name:        "min conns above max",
			env:         map[string]string{"DATABASE_URL": "postgres://x", "DB_MAX_CONNS": "2", "DB_MIN_CONNS": "3"},
			errorString: "DB_MIN_CONNS (3) exceeds DB_MAX_CONNS (2)",
		},
		{
			name:        "zero rate limit",
			env:         map[string]string{"DATABASE_URL": "postgres://x", "RATE_LIMIT_RPS": "0"},
			errorString: "must be positive",
		},
		{
			name:        "malformed trusted proxy",
			env:         map[string]string{"DATABASE_URL": "postgres://x", "TRUSTED_PROXIES": "10.0.0.0/33"},
			errorString: `invalid TRUSTED_PROXIES entry "10.0.0.0/33"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}
