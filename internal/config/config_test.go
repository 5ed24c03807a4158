package config_test

import (
	"testing"
	"time"

	"github.com/KignLeon/hpcf-website/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PORT", "")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, ":8080", cfg.Server.Addr())
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeoutDuration())
		assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeoutDuration())
		assert.Empty(t, cfg.Server.CORSOrigins)
		assert.Empty(t, cfg.Static.Dir)
		assert.Empty(t, cfg.Static.CSPSources)
		assert.Equal(t, int64(1<<20), cfg.Contact.MaxBodyBytes)
	})

	t.Run("PortFromEnv", func(t *testing.T) {
		t.Setenv("PORT", "4567")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, 4567, cfg.Server.Port)
		assert.Equal(t, ":4567", cfg.Server.Addr())
	})

	t.Run("NonNumericPort", func(t *testing.T) {
		t.Setenv("PORT", "eighty")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("PortOutOfRange", func(t *testing.T) {
		t.Setenv("PORT", "70000")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("StaticAndCORSFromEnv", func(t *testing.T) {
		t.Setenv("STATIC_DIR", "/srv/public")
		t.Setenv("STATIC_MAX_AGE_SECONDS", "3600")
		t.Setenv("STATIC_CSP_SOURCES", "'self',fonts.googleapis.com")
		t.Setenv("CORS_ORIGINS", "https://hpcf.example.org,https://www.hpcf.example.org")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "/srv/public", cfg.Static.Dir)
		assert.Equal(t, time.Hour, cfg.Static.MaxAgeDuration())
		assert.Equal(t, []string{"'self'", "fonts.googleapis.com"}, cfg.Static.CSPSources)
		assert.Equal(t, []string{"https://hpcf.example.org", "https://www.hpcf.example.org"}, cfg.Server.CORSOrigins)
	})

	t.Run("ContactBodyLimit", func(t *testing.T) {
		t.Setenv("CONTACT_MAX_BODY_BYTES", "0")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
