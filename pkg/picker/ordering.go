package picker

import (
	"strings"
	"sync"

	"github.com/filetug/filepicker/pkg/files"
	"golang.org/x/text/cases"
)

// Ordering compares two entries of the same directory.
// It returns a negative number when a sorts before b, zero when they tie
// and a positive number otherwise. A nil Ordering keeps store order.
type Ordering func(a, b files.Entry) int

// DirsFirst groups directories before files and orders each group by name,
// ignoring case.
func DirsFirst(a, b files.Entry) int {
	if a.IsDir && !b.IsDir {
		return -1
	} else if !a.IsDir && b.IsDir {
		return 1
	}
	return CompareNamesIgnoreCase(a.Name(), b.Name())
}

// A Caser keeps state between calls, so each comparison takes its own.
var folders = sync.Pool{
	New: func() any {
		fold := cases.Fold()
		return &fold
	},
}

// CompareNamesIgnoreCase uses Unicode case folding so the result does not
// depend on the process locale. It is safe for concurrent use.
func CompareNamesIgnoreCase(a, b string) int {
	fold := folders.Get().(*cases.Caser)
	defer folders.Put(fold)
	return strings.Compare(fold.String(a), fold.String(b))
}
