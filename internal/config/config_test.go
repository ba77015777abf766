package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staff-directory-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, []string{"editor@school.edu", "coder@school.edu", "admin@school.edu"}, cfg.Auth.EditorEmails)
	assert.Equal(t, 60, cfg.Cache.ListingTTLSeconds)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_EDITOR_EMAILS", " Admin@School.edu , lead@school.edu ")
	t.Setenv("CACHE_LISTING_TTL_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, []string{"admin@school.edu", "lead@school.edu"}, cfg.Auth.EditorEmails)
	assert.Equal(t, 5, cfg.Cache.ListingTTLSeconds)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
