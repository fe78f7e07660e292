package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, BackendFile, cfg.Persistence.Backend)
	assert.Equal(t, "./data", cfg.Persistence.DataDir)
	assert.Equal(t, 500, cfg.Ledger.CourseFee)
	assert.Equal(t, "INR", cfg.Ledger.Currency)
	assert.Equal(t, "campus-erp-api", cfg.JWT.Issuer)
	assert.Equal(t, "12h0m0s", cfg.JWT.Expiration.String())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PERSIST_BACKEND", BackendRedis)
	t.Setenv("LEDGER_COURSE_FEE", "750")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, BackendRedis, cfg.Persistence.Backend)
	assert.Equal(t, 750, cfg.Ledger.CourseFee)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"x"}, splitAndTrim(" x "))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim("a,,b"))
}
