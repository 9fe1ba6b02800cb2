package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	path, err := store.Save("menu.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "menu.png"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestDiskStore_SaveOverwritesSilently(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("menu.png", strings.NewReader("old"))
	require.NoError(t, err)

	second, err := store.Save("menu.png", strings.NewReader("new"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	content, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestDiskStore_SaveUsesLeafName(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	// Only the leaf of the supplied name is used; the file must stay
	// inside the content root.
	path, err := store.Save("../../etc/passwd.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "passwd.png"), path)
}

func TestDiskStore_Remove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("menu.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewDiskStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := NewDiskStore(root)
	require.NoError(t, err)
	assert.Equal(t, root, store.Root())

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
