package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{{"serve"}, {"suggest"}, {"resolve"}, {"history", "import"}, {"history", "show"}, {"history", "list"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestSuggest_DryRun(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "ollama")
	dir := t.TempDir()
	tracks := filepath.Join(dir, "tracks.txt")
	require.NoError(t, os.WriteFile(tracks, []byte("Can - Vitamin C\n"), 0o600))

	root := newRootCmd()
	root.SetArgs([]string{"suggest", "--tracks", tracks, "--dry-run", "--json", "--config", filepath.Join(dir, "missing.yaml")})
	err := root.Execute()
	require.Error(t, err, "an explicit config path that does not exist must fail")

	root = newRootCmd()
	root.SetArgs([]string{"suggest", "--tracks", tracks, "--dry-run", "--json"})
	assert.NoError(t, root.Execute())
}

func TestSuggest_NoTracksIsUsageError(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "ollama")

	root := newRootCmd()
	root.SetArgs([]string{"suggest", "--no-input"})
	err := root.Execute()

	var ue usageError
	require.True(t, errors.As(err, &ue), "got %v", err)
}
