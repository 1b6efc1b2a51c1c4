package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/paraglidehq/sqids"
	"github.com/paraglidehq/sqids/internal/config"
	"github.com/paraglidehq/sqids/postgres"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg := config.Load()
	log := cfg.NewLogger(os.Stderr)

	if err := newApp(cfg, os.Stdout).Run(os.Args); err != nil {
		log.Error("sqids failed", "err", err)
		os.Exit(1)
	}
}

func newApp(cfg config.Config, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "sqids",
		Usage:     "encode numbers into short ids and back",
		Writer:    stdout,
		ErrWriter: io.Discard,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "alphabet used for ids",
				Value: cfg.Alphabet,
			},
			&cli.IntFlag{
				Name:  "min-length",
				Usage: "minimum id length (0-255)",
				Value: cfg.MinLength,
			},
			&cli.StringFlag{
				Name:  "blocklist",
				Usage: "comma separated words that must not appear in ids (replaces the default list)",
				Value: strings.Join(cfg.Blocklist, ","),
			},
			&cli.BoolFlag{
				Name:  "no-blocklist",
				Usage: "disable the blocklist, including the default words",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode numbers into one id",
				ArgsUsage: "NUMBER...",
				Action:    encodeCommand,
			},
			{
				Name:      "decode",
				Usage:     "Decode ids, one sequence per line",
				ArgsUsage: "ID...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "fail on ids that are not canonical",
					},
				},
				Action: decodeCommand,
			},
			{
				Name:  "check",
				Usage: "Compare the local configuration with the one stored in the database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dsn",
						Usage: "postgres connection string",
						Value: cfg.DBDSN,
					},
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "store the local configuration if the database has none",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Value: 10 * time.Second,
					},
				},
				Action: checkCommand,
			},
		},
	}
}

func codecConfig(c *cli.Context) postgres.Config {
	cfg := postgres.Config{
		Alphabet:  c.String("alphabet"),
		MinLength: c.Int("min-length"),
		Blocklist: config.SplitList(c.String("blocklist")),
	}
	if c.Bool("no-blocklist") {
		cfg.Blocklist = []string{}
	}
	return cfg
}

func newCodec(c *cli.Context) (*sqids.Sqids, error) {
	s, err := sqids.New(codecConfig(c).Options())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return s, nil
}

// encodeCommand prints the id for the numbers given as arguments
func encodeCommand(c *cli.Context) error {
	s, err := newCodec(c)
	if err != nil {
		return err
	}

	numbers := make([]int64, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
		numbers = append(numbers, n)
	}

	id, err := s.EncodeInt64(numbers)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, id)
	return err
}

// decodeCommand prints the numbers of every id, one line per id
func decodeCommand(c *cli.Context) error {
	s, err := newCodec(c)
	if err != nil {
		return err
	}

	for _, id := range c.Args().Slice() {
		if c.Bool("strict") && !s.IsCanonical(id) {
			return fmt.Errorf("%w: %q", sqids.ErrInvalidID, id)
		}
		numbers := s.Decode(id)
		parts := make([]string, len(numbers))
		for i, n := range numbers {
			parts[i] = strconv.FormatUint(n, 10)
		}
		if _, err := fmt.Fprintln(c.App.Writer, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

// checkCommand verifies that this process and the database agree on the codec
func checkCommand(c *cli.Context) error {
	dsn := c.String("dsn")
	if dsn == "" {
		return errors.New("no database: set --dsn or SQIDS_DB_DSN")
	}
	local := codecConfig(c)

	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	defer cancel()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if c.Bool("migrate") {
		if err := postgres.Migrate(ctx, db, local); err != nil {
			return err
		}
	}

	stored, err := postgres.GetConfig(ctx, db)
	if err != nil {
		return fmt.Errorf("read stored configuration: %w", err)
	}
	if err := stored.Verify(local); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, "configuration matches")
	return err
}
