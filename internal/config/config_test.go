package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/paraglidehq/sqids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"SQIDS_ALPHABET", "SQIDS_MIN_LENGTH", "SQIDS_BLOCKLIST", "SQIDS_DB_DSN", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, sqids.DefaultAlphabet, cfg.Alphabet)
	assert.Equal(t, 0, cfg.MinLength)
	assert.Empty(t, cfg.Blocklist)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SQIDS_ALPHABET", "abcdefghij")
	t.Setenv("SQIDS_MIN_LENGTH", "12")
	t.Setenv("SQIDS_BLOCKLIST", "pony, ninja,,")
	t.Setenv("SQIDS_DB_DSN", "postgres://localhost/ids")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := Load()
	assert.Equal(t, "abcdefghij", cfg.Alphabet)
	assert.Equal(t, 12, cfg.MinLength)
	assert.Equal(t, []string{"pony", "ninja"}, cfg.Blocklist)
	assert.Equal(t, "postgres://localhost/ids", cfg.DBDSN)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	codec, err := sqids.New(cfg.Options())
	require.NoError(t, err)
	id, err := codec.Encode([]uint64{1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(id), 12)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SQIDS_MIN_LENGTH=7\nSQIDS_BLOCKLIST=pony\n"), 0o600))
	for _, k := range []string{"SQIDS_MIN_LENGTH", "SQIDS_BLOCKLIST"} {
		// Registers the restore, then clears so godotenv may set it.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg := Load()
	assert.Equal(t, 7, cfg.MinLength)
	assert.Equal(t, []string{"pony"}, cfg.Blocklist)
}

func TestLoadBadMinLengthKeepsDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SQIDS_MIN_LENGTH", "ten")
	assert.Equal(t, 0, Load().MinLength)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{LogLevel: slog.LevelWarn, LogFormat: "json"}
	log := cfg.NewLogger(&buf)
	log.Info("hidden")
	log.Warn("shown", "id", "86Rf07")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"id":"86Rf07"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}
