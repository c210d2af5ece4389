package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "America/Sao_Paulo", cfg.BusinessTimezone)
	assert.False(t, cfg.UseMemoryStore)
	assert.Equal(t, "info", cfg.LogLevel)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "local")
	t.Setenv("BUSINESS_TIMEZONE", "UTC")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("PUSH_AUDIENCE", "https://bankroll.test/events/firestore")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.UseMemoryStore, "ENV=local implies the memory store")
	assert.True(t, cfg.Local())
	assert.True(t, cfg.SkipAuth)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://bankroll.test/events/firestore", cfg.PushAudience)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankroll.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\npubsub_subscription: state-triggers\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "state-triggers", cfg.PubSubSubscription)
}

func TestLoadInvalidTimezone(t *testing.T) {
	t.Setenv("BUSINESS_TIMEZONE", "Mars/Olympus_Mons")

	_, err := Load("")
	assert.Error(t, err)
}
