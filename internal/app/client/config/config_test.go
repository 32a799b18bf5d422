package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SERVER_ADDRESS", "http://localhost:8080/")
	t.Setenv("INSTITUTIONAL_DOMAIN", "@example.edu")
	t.Cleanup(viper.Reset)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "http://localhost:8080", cfg.ServerAddress)
	assert.Equal(t, defaultFeedURL, cfg.FeedURL)
	assert.Equal(t, filepath.Join(dir, "portal.db"), cfg.DataPath)
	assert.Equal(t, filepath.Join(dir, "state.json"), cfg.StatePath)
	assert.Equal(t, "@example.edu", cfg.InstitutionalDomain)
	assert.False(t, cfg.IsProd())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad server address", key: "SERVER_ADDRESS", val: "localhost:8080"},
		{name: "bad feed url", key: "FEED_URL", val: "not a url"},
		{name: "unknown env", key: "APP_ENV", val: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_DIR", t.TempDir())
			t.Setenv(tt.key, tt.val)
			t.Cleanup(viper.Reset)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}
