package picker

import (
	"context"
	"os"
	"sort"

	"github.com/filetug/filepicker/pkg/files"
	"github.com/rs/zerolog"
)

// Lister reads directories of a store into listings.
type Lister struct {
	store  files.Store
	logger zerolog.Logger
}

func NewLister(store files.Store, logger zerolog.Logger) *Lister {
	return &Lister{store: store, logger: logger}
}

// List reads the children of dir, drops those rejected by display,
// sorts the rest with ordering and puts the parent directory first.
//
// A directory that can not be read lists as empty: the failure is logged,
// not returned. The parent row is still added so the user can go back.
func (l *Lister) List(ctx context.Context, dir files.Entry, display Filter, ordering Ordering) Listing {
	listing := Listing{Dir: dir}

	children := l.readDir(ctx, dir)
	if display != nil {
		visible := children[:0]
		for _, child := range children {
			if display(child) {
				visible = append(visible, child)
			}
		}
		children = visible
	}
	if ordering != nil {
		sortEntries(children, ordering)
	}

	if parent, ok := dir.Parent(); ok {
		listing.rows = make([]Row, 0, len(children)+1)
		listing.rows = append(listing.rows, Row{Entry: parent, IsParent: true})
		listing.HasParentRow = true
	} else {
		listing.rows = make([]Row, 0, len(children))
	}
	for _, child := range children {
		listing.rows = append(listing.rows, Row{Entry: child})
	}
	return listing
}

func (l *Lister) readDir(ctx context.Context, dir files.Entry) []files.Entry {
	if l.store == nil || dir.Path == "" {
		return nil
	}
	children, err := l.store.ReadDir(ctx, dir.Path)
	if err != nil {
		l.logger.Debug().Err(err).Str("dir", dir.Path).Msg("listing directory as empty")
		return nil
	}
	entries := make([]files.Entry, 0, len(children))
	for _, child := range children {
		entry := files.EntryFromDirEntry(dir.Path, child)
		if !entry.IsDir && child.Type()&os.ModeSymlink != 0 {
			entry.IsDir = l.isSymlinkToDir(ctx, entry.Path)
		}
		entries = append(entries, entry)
	}
	return entries
}

func (l *Lister) isSymlinkToDir(ctx context.Context, fullName string) bool {
	info, err := l.store.Stat(ctx, fullName)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func sortEntries(entries []files.Entry, ordering Ordering) {
	sort.SliceStable(entries, func(i, j int) bool {
		return ordering(entries[i], entries[j]) < 0
	})
}
