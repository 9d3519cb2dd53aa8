package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPoemsCache(t *testing.T) {
	t.Cleanup(InvalidatePoemCache)
	InvalidatePoemCache()

	dir := t.TempDir()
	path := filepath.Join(dir, "poems.json")
	require.NoError(t, SavePoems(path, samplePoems, FormatJSON))

	poems, err := GetPoemsCache(path, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, samplePoems, poems)

	// Served from memory until invalidated.
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
	poems, err = GetPoemsCache(path, FormatJSON)
	require.NoError(t, err)
	assert.Len(t, poems, 2)

	InvalidatePoemCache()
	poems, err = GetPoemsCache(path, FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, poems)
}

func TestGetPoemsCacheYAML(t *testing.T) {
	t.Cleanup(InvalidatePoemCache)
	InvalidatePoemCache()

	// The extension does not decide the encoding; the caller does.
	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, SavePoems(path, samplePoems, FormatYAML))

	poems, err := GetPoemsCache(path, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, samplePoems, poems)
}

func TestGetPoemsCacheMissingFile(t *testing.T) {
	t.Cleanup(InvalidatePoemCache)
	InvalidatePoemCache()

	_, err := GetPoemsCache(filepath.Join(t.TempDir(), "absent.json"), FormatJSON)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
