package picker

import (
	"strings"

	"github.com/filetug/filepicker/pkg/files"
)

// Validate reports whether entry may be returned to the host as the chosen
// file. Directories are never valid: a click on one navigates instead.
func Validate(entry files.Entry, selection Filter) bool {
	if entry.IsDir {
		return false
	}
	return selection.Accept(entry)
}

// BaseName returns the file name of path without its extension.
// Both '/' and '\' separate path elements, whatever the OS.
func BaseName(path string) string {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	} else if i = strings.LastIndex(path, `\`); i >= 0 {
		name = path[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}
