// Package postgres keeps the sqids configuration in the database so every
// application instance, and SQL run inside the database, encodes with the
// same alphabet, minimum length and blocklist.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lib/pq"
	"github.com/paraglidehq/sqids"
)

// Config holds the codec parameters shared through the database. As with
// sqids.Options, a nil Blocklist means the default word list and an empty
// one means no blocklist.
type Config struct {
	Alphabet  string
	MinLength int
	Blocklist []string
}

// DefaultConfig returns the configuration matching sqids.Options{}.
func DefaultConfig() Config {
	return Config{Alphabet: sqids.DefaultAlphabet, Blocklist: sqids.DefaultBlocklist()}
}

// Options converts the configuration for sqids.New.
func (c Config) Options() sqids.Options {
	return sqids.Options{
		Alphabet:  c.Alphabet,
		MinLength: c.MinLength,
		Blocklist: slices.Clone(c.Blocklist),
	}
}

// normalize fills in the default alphabet and returns the blocklist the
// codec would actually use, sorted, so equal configurations compare equal.
func (c Config) normalize() (Config, error) {
	s, err := sqids.New(c.Options())
	if err != nil {
		return c, err
	}
	if c.Alphabet == "" {
		c.Alphabet = sqids.DefaultAlphabet
	}
	c.Blocklist = s.Blocklist()
	slices.Sort(c.Blocklist)
	return c, nil
}

// Equal reports whether both configurations build identical codecs.
func (c Config) Equal(other Config) bool {
	a, errA := c.normalize()
	b, errB := other.normalize()
	if errA != nil || errB != nil {
		return false
	}
	return a.Alphabet == b.Alphabet && a.MinLength == b.MinLength && slices.Equal(a.Blocklist, b.Blocklist)
}

// Verify returns nil when app builds the same codec as the stored
// configuration c, and an ErrConfigMismatch naming both sides otherwise.
func (c Config) Verify(app Config) error {
	if c.Equal(app) {
		return nil
	}
	db, _ := c.normalize()
	local, _ := app.normalize()
	return fmt.Errorf("%w: db has alphabet=%q min_length=%d blocklist=%d words, app has alphabet=%q min_length=%d blocklist=%d words",
		ErrConfigMismatch, db.Alphabet, db.MinLength, len(db.Blocklist),
		local.Alphabet, local.MinLength, len(local.Blocklist))
}

var ErrConfigMismatch = errors.New("sqids: database config does not match application config")

// Migrate stores cfg in the database and installs the helper functions.
// It is idempotent. If the database already holds a different configuration,
// it returns ErrConfigMismatch.
func Migrate(ctx context.Context, db *sql.DB, cfg Config) error {
	cfg, err := cfg.normalize()
	if err != nil {
		return fmt.Errorf("sqids: invalid config: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _sqids_config (
			id int PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			alphabet text NOT NULL,
			min_length smallint NOT NULL CHECK (min_length BETWEEN 0 AND 255),
			blocklist text[] NOT NULL DEFAULT '{}'
		)
	`)
	if err != nil {
		return fmt.Errorf("sqids: create config table: %w", err)
	}

	stored, err := GetConfig(ctx, db)
	switch {
	case err == nil:
		if err := stored.Verify(cfg); err != nil {
			return err
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.ExecContext(ctx,
			`INSERT INTO _sqids_config (alphabet, min_length, blocklist) VALUES ($1, $2, $3)`,
			cfg.Alphabet, cfg.MinLength, pq.Array(cfg.Blocklist))
		if err != nil {
			return fmt.Errorf("sqids: insert config: %w", err)
		}
	default:
		return fmt.Errorf("sqids: read config: %w", err)
	}

	if _, err := db.ExecContext(ctx, generateSQL()); err != nil {
		return fmt.Errorf("sqids: run migrations: %w", err)
	}
	return nil
}

// GetConfig reads the stored configuration. It returns sql.ErrNoRows when
// Migrate has not stored one yet.
func GetConfig(ctx context.Context, db *sql.DB) (Config, error) {
	var cfg Config
	var blocklist pq.StringArray
	err := db.QueryRowContext(ctx,
		`SELECT alphabet, min_length, blocklist FROM _sqids_config`,
	).Scan(&cfg.Alphabet, &cfg.MinLength, &blocklist)
	if err != nil {
		return cfg, err
	}
	// the stored list is always explicit; '{}' must not turn into nil
	cfg.Blocklist = append([]string{}, blocklist...)
	return cfg, nil
}

// Open builds a codec from the stored configuration.
func Open(ctx context.Context, db *sql.DB) (*sqids.Sqids, error) {
	cfg, err := GetConfig(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("sqids: read config: %w", err)
	}
	return sqids.New(cfg.Options())
}

// generateSQL returns the accessors that in-database callers pass to the
// sqids_encode and sqids_decode extension functions.
func generateSQL() string {
	var b strings.Builder
	for _, fn := range []struct{ name, typ, column string }{
		{"sqids_alphabet", "text", "alphabet"},
		{"sqids_min_length", "smallint", "min_length"},
		{"sqids_blocklist", "text[]", "blocklist"},
	} {
		fmt.Fprintf(&b, `
CREATE OR REPLACE FUNCTION %s()
  RETURNS %s
  LANGUAGE sql
  STABLE PARALLEL SAFE
  AS $$
  SELECT %s FROM _sqids_config WHERE id = 1;
$$;
`, fn.name, fn.typ, fn.column)
	}
	return b.String()
}
