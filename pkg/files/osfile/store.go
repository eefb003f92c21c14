package osfile

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/filetug/filepicker/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat

var _ files.Store = (*Store)(nil)

// Store reads the local file system.
type Store struct {
	root string
}

func (s Store) Root() string {
	return s.root
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(s.root),
	}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

// Stat follows symlinks, so a link to a directory reports IsDir.
func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func NewStore(root string) *Store {
	if root == "" {
		root = string(filepath.Separator)
	}
	return &Store{root: filepath.Clean(root)}
}
