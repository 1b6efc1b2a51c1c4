package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/paraglidehq/sqids"
	"github.com/paraglidehq/sqids/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg := config.Config{Alphabet: sqids.DefaultAlphabet}
	err := newApp(cfg, &out).Run(append([]string{"sqids"}, args...))
	return out.String(), err
}

func TestEncode(t *testing.T) {
	out, err := run(t, "encode", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "86Rf07\n", out)

	out, err = run(t, "--min-length", "10", "encode", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "86Rf07xd4z\n", out)

	out, err = run(t, "--blocklist", "86Rf07", "encode", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "se8ojk\n", out)

	out, err = run(t, "encode")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestEncodeBlocklistDefaults(t *testing.T) {
	out, err := run(t, "encode", "15583")
	require.NoError(t, err)
	assert.Equal(t, "rxzk\n", out)

	out, err = run(t, "--no-blocklist", "encode", "15583")
	require.NoError(t, err)
	assert.Equal(t, "CocK\n", out)
}

func TestEncodeErrors(t *testing.T) {
	_, err := run(t, "encode", "1", "-2")
	assert.True(t, errors.Is(err, sqids.ErrNegativeNumber), "got %v", err)

	_, err = run(t, "encode", "one")
	assert.Error(t, err)

	_, err = run(t, "--min-length", "300", "encode", "1")
	assert.True(t, errors.Is(err, sqids.ErrMinLengthRange), "got %v", err)

	_, err = run(t, "--alphabet", "0123456789", "encode", "1")
	assert.True(t, errors.Is(err, sqids.ErrAlphabetNumericOnly), "got %v", err)
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "86Rf07", "bM", "not*an*id")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n0\n\n", out)

	out, err = run(t, "decode", "--strict", "86Rf07")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3\n", out)

	_, err = run(t, "decode", "--strict", "86Rf07xd4z")
	assert.True(t, errors.Is(err, sqids.ErrInvalidID), "got %v", err)
}

func TestCheckWithoutDSN(t *testing.T) {
	_, err := run(t, "check")
	assert.ErrorContains(t, err, "no database")
}
