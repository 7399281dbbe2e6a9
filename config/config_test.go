package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/dikit/config"
)

// TestMapSource_Lookup verifies map lookups distinguish present from
// absent keys.
func TestMapSource_Lookup(t *testing.T) {
	t.Parallel()

	src := config.MapSource{"API_KEY": "secret"}

	v, ok := src.Lookup("API_KEY")
	require.True(t, ok)
	assert.Equal(t, "secret", v)

	_, ok = src.Lookup("missing")
	assert.False(t, ok)
}

// TestEnv_ReadsProcessEnv verifies the env source reads variables set in
// the process environment.
func TestEnv_ReadsProcessEnv(t *testing.T) {
	t.Setenv("DIKIT_TEST_API_KEY", "from-env")

	src := config.Env()
	v, ok := src.Lookup("DIKIT_TEST_API_KEY")
	require.True(t, ok)
	assert.Equal(t, "from-env", v)
}

// TestEnv_LoadsDotenvFile verifies values from a named .env file become
// visible through the env source.
func TestEnv_LoadsDotenvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DIKIT_TEST_FILE_KEY=from-file\n"), 0o600))

	t.Cleanup(func() { _ = os.Unsetenv("DIKIT_TEST_FILE_KEY") })

	src := config.Env(path)
	v, ok := src.Lookup("DIKIT_TEST_FILE_KEY")
	require.True(t, ok)
	assert.Equal(t, "from-file", v)
}

// TestEnv_MissingFileNotFatal verifies a nonexistent .env file is ignored.
func TestEnv_MissingFileNotFatal(t *testing.T) {
	t.Parallel()

	src := config.Env(filepath.Join(t.TempDir(), "no-such.env"))
	_, ok := src.Lookup("DIKIT_TEST_NO_SUCH_KEY")
	assert.False(t, ok)
}

// TestString_Resolve covers the string leaf semantics: present, required
// missing, default, and optional absence.
func TestString_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		leaf := config.String("api_key", "API_KEY", config.Required())
		v, ok, err := leaf.Resolve(config.MapSource{"API_KEY": "secret"})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "secret", v)
	})

	t.Run("required missing", func(t *testing.T) {
		t.Parallel()

		leaf := config.String("api_key", "API_KEY", config.Required())
		_, _, err := leaf.Resolve(config.MapSource{})
		require.Error(t, err)

		var missing config.MissingKeyError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "API_KEY", missing.Key)
	})

	t.Run("default applied", func(t *testing.T) {
		t.Parallel()

		leaf := config.String("mode", "MODE", config.Default("demo"))
		v, ok, err := leaf.Resolve(config.MapSource{})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "demo", v)
	})

	t.Run("optional absent", func(t *testing.T) {
		t.Parallel()

		leaf := config.String("mode", "MODE")
		_, ok, err := leaf.Resolve(config.MapSource{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty treated as absent", func(t *testing.T) {
		t.Parallel()

		leaf := config.String("api_key", "API_KEY", config.Required())
		_, _, err := leaf.Resolve(config.MapSource{"API_KEY": ""})
		require.Error(t, err)
	})
}

// TestInt_Resolve covers the integer leaf semantics: conversion, defaults,
// and parse failures carrying key and raw value.
func TestInt_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("parses", func(t *testing.T) {
		t.Parallel()

		leaf := config.Int("timeout", "TIMEOUT")
		v, ok, err := leaf.Resolve(config.MapSource{"TIMEOUT": "30"})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 30, v)
	})

	t.Run("default applied", func(t *testing.T) {
		t.Parallel()

		leaf := config.Int("timeout", "TIMEOUT", config.Default(5))
		v, ok, err := leaf.Resolve(config.MapSource{})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 5, v)
	})

	t.Run("bad value", func(t *testing.T) {
		t.Parallel()

		leaf := config.Int("timeout", "TIMEOUT")
		_, _, err := leaf.Resolve(config.MapSource{"TIMEOUT": "soon"})
		require.Error(t, err)

		var parse config.ParseError
		require.True(t, errors.As(err, &parse))
		assert.Equal(t, "TIMEOUT", parse.Key)
		assert.Equal(t, "soon", parse.Value)
		assert.Equal(t, "integer", parse.Want)
		assert.Contains(t, err.Error(), `"soon"`)
	})
}
