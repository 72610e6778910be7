// Package config loads the server settings from the environment and an
// optional .env file, and builds the logger.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type Config struct {
	Addr        string
	TLSCert     string
	TLSKey      string
	DatabaseURL string
	TokenKey    []byte
	RateLimit   rate.Limit
	RateBurst   int
	LogLevel    zerolog.Level
	LogFormat   string
}

// TLS reports whether both certificate files are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

// Load reads files (".env" when none are given) into the environment
// without overriding variables already set, then parses the settings.
// Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	c := Config{
		Addr:        env("ADDR", ":8080"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		TokenKey:    []byte(os.Getenv("TOKEN_KEY")),
		LogFormat:   strings.ToLower(env("LOG_FORMAT", "json")),
	}
	if len(c.TokenKey) == 0 {
		return Config{}, fmt.Errorf("TOKEN_KEY environment variable is not set")
	}

	limit, err := strconv.ParseFloat(env("RATE_LIMIT", "1"), 64)
	if err != nil || limit <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT: %q is not a positive number", os.Getenv("RATE_LIMIT"))
	}
	c.RateLimit = rate.Limit(limit)
	if c.RateBurst, err = strconv.Atoi(env("RATE_BURST", "3")); err != nil || c.RateBurst < 1 {
		return Config{}, fmt.Errorf("RATE_BURST: %q is not a positive integer", os.Getenv("RATE_BURST"))
	}
	if c.LogLevel, err = zerolog.ParseLevel(env("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return Config{}, fmt.Errorf("LOG_FORMAT: %q is neither json nor console", c.LogFormat)
	}
	return c, nil
}

// Logger builds the process logger writing to w.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if c.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
