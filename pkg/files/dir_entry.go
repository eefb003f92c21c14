package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry creates an os.DirEntry that is not backed by a real file.
// Stores that do not talk to the local OS use it to describe children.
func NewDirEntry(name string, isDir bool) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	mode := os.FileMode(0)
	if isDir {
		mode = os.ModeDir
	}
	return DirEntry{name: name, mode: mode}
}

// NewSymlinkEntry creates an os.DirEntry for a symbolic link.
// Whether it points at a directory is only known after a Stat.
func NewSymlinkEntry(name string) DirEntry {
	entry := NewDirEntry(name, false)
	entry.mode = os.ModeSymlink
	return entry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name string
	mode os.FileMode
}

func (d DirEntry) Name() string      { return d.name }
func (d DirEntry) IsDir() bool       { return d.mode.IsDir() }
func (d DirEntry) Type() os.FileMode { return d.mode.Type() }
func (d DirEntry) Info() (os.FileInfo, error) {
	return nil, os.ErrNotExist
}
