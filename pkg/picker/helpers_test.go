package picker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/filepicker/pkg/files"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockStore(t *testing.T) *MockStore {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStore(ctrl)
}

// makeTree creates dirs (names ending with "/") and files under a temp dir
// and returns its path.
func makeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		p := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	return root
}

func rowNames(listing Listing) []string {
	names := make([]string, 0, listing.Len())
	for _, row := range listing.Rows() {
		if row.IsParent {
			names = append(names, "..")
			continue
		}
		names = append(names, row.Name())
	}
	return names
}

func rootDir() files.Entry {
	return files.NewEntry(string(filepath.Separator), true)
}
