package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/paraglidehq/sqids"
)

type Config struct {
	// Codec parameters. Every process that decodes an id needs the same values.
	Alphabet  string
	MinLength int
	Blocklist []string

	// DBDSN points at the database holding the shared configuration.
	DBDSN string

	LogLevel  slog.Level
	LogFormat string
}

// Load returns the configuration from defaults, an optional .env file and
// the environment, in increasing priority.
func Load() Config {
	cfg := Config{
		Alphabet:  sqids.DefaultAlphabet,
		MinLength: 0,
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
	}

	_ = godotenv.Load(".env")

	if v, ok := os.LookupEnv("SQIDS_ALPHABET"); ok && v != "" {
		cfg.Alphabet = v
	}
	if v, ok := os.LookupEnv("SQIDS_MIN_LENGTH"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinLength = n
		}
	}
	if v, ok := os.LookupEnv("SQIDS_BLOCKLIST"); ok && v != "" {
		cfg.Blocklist = SplitList(v)
	}
	if v, ok := os.LookupEnv("SQIDS_DB_DSN"); ok && v != "" {
		cfg.DBDSN = v
	}

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = ParseLevel(v)
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	return cfg
}

// Options converts the codec parameters for sqids.New.
func (c Config) Options() sqids.Options {
	return sqids.Options{
		Alphabet:  c.Alphabet,
		MinLength: c.MinLength,
		Blocklist: c.Blocklist,
	}
}

// NewLogger returns a slog logger writing to w in the configured format.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
