package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ModeSubdomain, cfg.Multitenancy.Mode)
	assert.Equal(t, "app", cfg.Multitenancy.AdminLabel)
	assert.Equal(t, "pawprint.local", cfg.Multitenancy.BaseDomain)
	assert.False(t, cfg.Multitenancy.Isolation)
	assert.True(t, cfg.Embed.DemoEnabled)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9000"
multitenancy:
  mode: path
  base_domain: rescues.example.org
  isolation: true
embed:
  token_ttl: 24h
endpoints:
  pages:
    base_url: https://content.example.org/api
    token: pages-secret
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, ModePath, cfg.Multitenancy.Mode)
	assert.True(t, cfg.Multitenancy.Isolation)
	assert.Equal(t, 24*time.Hour, cfg.Embed.TokenTTL)
	assert.Equal(t, "pages-secret", cfg.Endpoints[GroupPages].Token)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\n"), 0o600))

	t.Setenv("PAWPRINT_ADDR", ":7000")
	t.Setenv("PAWPRINT_MULTITENANCY_MODE", "custom-domain")
	t.Setenv("PAWPRINT_API_ANIMALS_URL", "https://animals.example.org")
	t.Setenv("PAWPRINT_API_ANIMALS_TOKEN", "animals-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, ModeCustomDomain, cfg.Multitenancy.Mode)
	assert.Equal(t, "https://animals.example.org", cfg.Endpoints[GroupAnimals].BaseURL)
	assert.Equal(t, "animals-secret", cfg.Endpoints[GroupAnimals].Token)
}

func TestProductionDisablesDemoToken(t *testing.T) {
	t.Setenv("PAWPRINT_ENV", "production")
	t.Setenv("PAWPRINT_EMBED_DEMO", "true")
	t.Setenv("PAWPRINT_EMBED_SECRET", "prod-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Embed.DemoEnabled, "demo bypass must be forced off in production")
}

func TestProductionRequiresSigningSecret(t *testing.T) {
	t.Setenv("PAWPRINT_ENV", "production")

	_, err := Load("")
	require.Error(t, err)
}

func TestRejectsUnknownMode(t *testing.T) {
	t.Setenv("PAWPRINT_MULTITENANCY_MODE", "cookie")

	_, err := Load("")
	require.Error(t, err)
}
