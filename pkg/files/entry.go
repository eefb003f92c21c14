package files

import (
	"os"
	"path/filepath"
)

// Entry is a file system path plus its kind. Two entries are the same entry
// when their paths are equal.
type Entry struct {
	Path  string
	IsDir bool
}

func NewEntry(path string, isDir bool) Entry {
	return Entry{Path: filepath.Clean(path), IsDir: isDir}
}

// EntryFromDirEntry joins a child returned by Store.ReadDir with its directory.
func EntryFromDirEntry(dir string, child os.DirEntry) Entry {
	return NewEntry(filepath.Join(dir, child.Name()), child.IsDir())
}

func (e Entry) Name() string {
	if e.Path == "" {
		return ""
	}
	return filepath.Base(e.Path)
}

// Parent returns the directory containing e.
// ok is false at a file system root.
func (e Entry) Parent() (parent Entry, ok bool) {
	if e.Path == "" {
		return Entry{}, false
	}
	dir := filepath.Dir(e.Path)
	if dir == e.Path {
		return Entry{}, false
	}
	return NewEntry(dir, true), true
}

func (e Entry) String() string {
	return e.Path
}
