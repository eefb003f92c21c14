package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntry(t *testing.T) {
	t.Parallel()
	entry := NewEntry("/a/b/../c/", true)
	assert.Equal(t, filepath.Clean("/a/c"), entry.Path)
	assert.True(t, entry.IsDir)
	assert.Equal(t, "c", entry.Name())
	assert.Equal(t, entry.Path, entry.String())
}

func TestEntry_Name_Empty(t *testing.T) {
	t.Parallel()
	var entry Entry
	assert.Equal(t, "", entry.Name())
}

func TestEntry_Parent(t *testing.T) {
	t.Parallel()

	t.Run("nested", func(t *testing.T) {
		entry := NewEntry("/a/b/report.gpx", false)
		parent, ok := entry.Parent()
		assert.True(t, ok)
		assert.Equal(t, filepath.Clean("/a/b"), parent.Path)
		assert.True(t, parent.IsDir)
	})

	t.Run("root", func(t *testing.T) {
		root := NewEntry(string(filepath.Separator), true)
		_, ok := root.Parent()
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := Entry{}.Parent()
		assert.False(t, ok)
	})
}

func TestEntryFromDirEntry(t *testing.T) {
	t.Parallel()
	entry := EntryFromDirEntry("/sd", NewDirEntry("maps", true))
	assert.Equal(t, filepath.Join("/sd", "maps"), entry.Path)
	assert.True(t, entry.IsDir)
}

func TestDirEntry(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		de := NewDirEntry("track.gpx", false)
		assert.Equal(t, "track.gpx", de.Name())
		assert.False(t, de.IsDir())
		assert.Equal(t, os.FileMode(0), de.Type())
		info, err := de.Info()
		assert.Nil(t, info)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		de := NewDirEntry("maps", true)
		assert.True(t, de.IsDir())
		assert.Equal(t, os.ModeDir, de.Type())
	})

	t.Run("symlink", func(t *testing.T) {
		de := NewSymlinkEntry("link")
		assert.False(t, de.IsDir())
		assert.Equal(t, os.ModeSymlink, de.Type())
	})

	t.Run("name_with_path_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewDirEntry(filepath.Join("a", "b"), false)
		})
	})
}
