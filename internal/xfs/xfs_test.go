package xfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "outputs"), ExpandTilde("~/outputs"))
	assert.Equal(t, "/var/tmp", ExpandTilde("/var/tmp"))
	assert.Equal(t, "relative/path", ExpandTilde("relative/path"))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent on an existing directory.
	assert.NoError(t, EnsureDir(dir))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "greeting", Stem("/uploads/greeting.wav"))
	assert.Equal(t, "card", Stem("card.png"))
	assert.Equal(t, "noext", Stem("noext"))
	assert.Equal(t, "archive.tar", Stem("archive.tar.gz"))
}
