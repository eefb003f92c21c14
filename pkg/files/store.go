package files

import (
	"context"
	"net/url"
	"os"
)

//go:generate mockgen -source=store.go -destination=../picker/mock_store_test.go -package=picker

// Store is the file system a picker browses.
type Store interface {
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
