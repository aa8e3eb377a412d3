package qr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRendersOncePerID(t *testing.T) {
	g, err := NewGenerator(filepath.Join(t.TempDir(), "qr"))
	require.NoError(t, err)

	path, err := g.Ensure("00042")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(g.Dir, "00042.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// A second call reuses the file on disk.
	first := info.ModTime()
	again, err := g.Ensure("00042")
	require.NoError(t, err)
	assert.Equal(t, path, again)

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, first, info.ModTime())
}

func TestEnsureDistinctIDs(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	require.NoError(t, err)

	a, err := g.Ensure("00001")
	require.NoError(t, err)
	b, err := g.Ensure("00002")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
