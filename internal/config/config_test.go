package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"Stairs/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ADDR", "TLS_CERT", "TLS_KEY", "DATABASE_URL", "TOKEN_KEY", "RATE_LIMIT", "RATE_BURST", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_KEY", "secret")

	c, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, []byte("secret"), c.TokenKey)
	assert.Equal(t, rate.Limit(1), c.RateLimit)
	assert.Equal(t, 3, c.RateBurst)
	assert.Equal(t, zerolog.InfoLevel, c.LogLevel)
	assert.False(t, c.TLS())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9000")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TOKEN_KEY=fromfile\nADDR=:7000\nRATE_BURST=10\nLOG_LEVEL=debug\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Addr, "environment wins over the file")
	assert.Equal(t, []byte("fromfile"), c.TokenKey)
	assert.Equal(t, 10, c.RateBurst)
	assert.Equal(t, zerolog.DebugLevel, c.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"no token key", map[string]string{}},
		{"bad rate", map[string]string{"TOKEN_KEY": "k", "RATE_LIMIT": "fast"}},
		{"zero burst", map[string]string{"TOKEN_KEY": "k", "RATE_BURST": "0"}},
		{"bad level", map[string]string{"TOKEN_KEY": "k", "LOG_LEVEL": "loud"}},
		{"bad format", map[string]string{"TOKEN_KEY": "k", "LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(filepath.Join(t.TempDir(), "none"))
			assert.Error(t, err)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := config.Config{LogLevel: zerolog.WarnLevel, LogFormat: "json"}
	log := c.Logger(&buf)
	log.Info().Msg("hidden")
	log.Warn().Str("field", "lifting_name").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"field":"lifting_name"`)
}
