package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cashflow-insight/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"GIN_MODE", "LOG_FORMAT", "PORT", "API_URL", "CORS_ALLOW_ORIGINS", "ENABLE_PPROF", "MAX_UPLOAD_SIZE"} {
		value, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		if ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "release", c.GinMode)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "http://localhost:8080", c.APIURL.String())
	assert.Equal(t, []string{"*"}, c.CORSAllowOrigins)
	assert.True(t, c.AllowAllOrigins())
	assert.False(t, c.EnablePprof)
	assert.Equal(t, int64(10485760), c.MaxUploadSize)
	assert.False(t, c.HumanLogs())
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("PORT", "3000")
	t.Setenv("API_URL", "https://example.com/api/")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com https://b.example.com")
	t.Setenv("ENABLE_PPROF", "true")
	t.Setenv("MAX_UPLOAD_SIZE", "1024")

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", c.GinMode)
	assert.Equal(t, 3000, c.Port)
	assert.Equal(t, "https://example.com/api", c.APIURL.String())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.CORSAllowOrigins)
	assert.False(t, c.AllowAllOrigins())
	assert.True(t, c.EnablePprof)
	assert.Equal(t, int64(1024), c.MaxUploadSize)
	assert.True(t, c.HumanLogs(), "debug mode without LOG_FORMAT logs for humans")
}

func TestLoadLogFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("LOG_FORMAT", "json")

	c, err := config.Load()
	require.NoError(t, err)
	assert.False(t, c.HumanLogs())

	t.Setenv("GIN_MODE", "release")
	t.Setenv("LOG_FORMAT", "human")

	c, err = config.Load()
	require.NoError(t, err)
	assert.True(t, c.HumanLogs())
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("MAX_UPLOAD_SIZE")
	})

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("PORT=9090\nMAX_UPLOAD_SIZE=2048\n"), 0o600))

	c, err := config.Load(file, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, int64(2048), c.MaxUploadSize)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"Relative URL", "API_URL", "/api"},
		{"Invalid URL", "API_URL", "http://[::1"},
		{"Port out of range", "PORT", "70000"},
		{"Port not a number", "PORT", "http"},
		{"Upload size zero", "MAX_UPLOAD_SIZE", "0"},
		{"Upload size negative", "MAX_UPLOAD_SIZE", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
