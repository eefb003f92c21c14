package picker

import (
	"github.com/filetug/filepicker/pkg/files"
)

// Row is one entry of a Listing as the host renders it.
type Row struct {
	files.Entry
	// IsParent marks the synthetic "go up" row at index 0.
	IsParent bool
}

// Listing is the ordered, filtered content of one directory read at one
// point in time. It is never modified after Lister.List returns it.
type Listing struct {
	Dir          files.Entry
	rows         []Row
	HasParentRow bool
}

func (l Listing) Len() int {
	return len(l.rows)
}

// At returns the row at index i; ok is false when i is out of range.
func (l Listing) At(i int) (row Row, ok bool) {
	if i < 0 || i >= len(l.rows) {
		return Row{}, false
	}
	return l.rows[i], true
}

// Rows returns a copy of the rows, so callers can not alter the listing.
func (l Listing) Rows() []Row {
	rows := make([]Row, len(l.rows))
	copy(rows, l.rows)
	return rows
}

// Entries returns the real children, without the parent row.
func (l Listing) Entries() []files.Entry {
	rows := l.rows
	if l.HasParentRow {
		rows = rows[1:]
	}
	entries := make([]files.Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.Entry
	}
	return entries
}

// Equal reports whether both listings show the same rows for the same dir.
func (l Listing) Equal(other Listing) bool {
	if l.Dir != other.Dir || l.HasParentRow != other.HasParentRow || len(l.rows) != len(other.rows) {
		return false
	}
	for i := range l.rows {
		if l.rows[i] != other.rows[i] {
			return false
		}
	}
	return true
}
