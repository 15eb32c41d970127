package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, Levels{Class: 2, Function: 3, Section: 4}, cfg.Levels)
	assert.Contains(t, cfg.Sections, "Args:")
	assert.Contains(t, cfg.Sections, "Examples:")
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "doc2md.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("partial config keeps defaults for absent keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "levels:\n  section: 5\n")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Levels.Section)
		assert.Equal(t, 2, cfg.Levels.Class)
		assert.Contains(t, cfg.Sections, "Returns:")
	})

	t.Run("sections list replaces the default set", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "sections:\n  - \"Parameters:\"\n")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"Parameters:"}, cfg.Sections)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "lvels:\n  class: 1\n")

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.Error(t, err)
	})
}
