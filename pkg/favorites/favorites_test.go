package favorites

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", favoritesFileName))
}

func TestNewStore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/tmp/fav.yaml", NewStore("/tmp/fav.yaml").FilePath())
	assert.Equal(t, favoritesFileName, filepath.Base(NewStore("").FilePath()))
}

func TestFavorite_Dir(t *testing.T) {
	t.Parallel()
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "maps"), Favorite{Path: "~/maps/"}.Dir())
	assert.Equal(t, "/srv/data", Favorite{Path: "/srv//data"}.Dir())
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	t.Run("missing_file_yields_defaults", func(t *testing.T) {
		t.Parallel()
		store := newTestStore(t)
		favorites, err := store.List()
		require.NoError(t, err)
		assert.Equal(t, defaultFavorites(), favorites)
		assert.NoFileExists(t, store.FilePath())
	})

	t.Run("empty_file", func(t *testing.T) {
		t.Parallel()
		filePath := filepath.Join(t.TempDir(), favoritesFileName)
		require.NoError(t, os.WriteFile(filePath, nil, 0o644))
		favorites, err := NewStore(filePath).List()
		assert.NoError(t, err)
		assert.Empty(t, favorites)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		t.Parallel()
		filePath := filepath.Join(t.TempDir(), favoritesFileName)
		require.NoError(t, os.WriteFile(filePath, []byte("invalid: ["), 0o644))
		favorites, err := NewStore(filePath).List()
		assert.Error(t, err)
		assert.Nil(t, favorites)
	})

	t.Run("no_file_path", func(t *testing.T) {
		t.Parallel()
		_, err := Store{}.List()
		assert.ErrorIs(t, err, errNoFavorites)
	})
}

func TestStore_AddDelete(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	err := store.Add(Favorite{Path: "/srv/tracks", Description: "Tracks"})
	require.NoError(t, err)

	favorites, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, append(defaultFavorites(), Favorite{Path: "/srv/tracks", Description: "Tracks"}), favorites)

	err = store.Add(Favorite{Path: "/srv/tracks/"})
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, store.Delete("/srv/tracks"))
	favorites, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, defaultFavorites(), favorites)

	err = store.Delete("/srv/tracks")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Add_AbbreviatesHome(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.NoError(t, store.Delete("~"))
	require.NoError(t, store.Add(Favorite{Path: home}))
	require.NoError(t, store.Add(Favorite{Path: filepath.Join(home, "maps")}))

	favorites, err := store.List()
	require.NoError(t, err)
	paths := make([]string, 0, len(favorites))
	for _, f := range favorites {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"~/.filepicker", "~", "~/maps"}, paths)
}

// Tests below swap package variables and must not run in parallel.

func TestStore_WriteErrors(t *testing.T) {
	origMarshal, origMkdir, origWrite := yamlMarshal, osMkdirAll, osWriteFile
	defer func() {
		yamlMarshal, osMkdirAll, osWriteFile = origMarshal, origMkdir, origWrite
	}()
	store := newTestStore(t)
	favorite := Favorite{Path: "/srv"}

	yamlMarshal = func(interface{}) ([]byte, error) {
		return nil, errors.New("marshal failed")
	}
	assert.EqualError(t, store.Add(favorite), "marshal failed")
	yamlMarshal = origMarshal

	osMkdirAll = func(string, os.FileMode) error {
		return errors.New("mkdir failed")
	}
	assert.EqualError(t, store.Add(favorite), "mkdir failed")
	osMkdirAll = origMkdir

	osWriteFile = func(string, []byte, os.FileMode) error {
		return errors.New("write failed")
	}
	assert.EqualError(t, store.Add(favorite), "write failed")
}

func TestAbbreviateHome_NoHome(t *testing.T) {
	origHome := osUserHomeDir
	defer func() { osUserHomeDir = origHome }()
	osUserHomeDir = func() (string, error) {
		return "", errors.New("no home")
	}
	assert.Equal(t, "/home/x/maps", abbreviateHome("/home/x/maps"))
}

func TestNewStore_NoUserDir(t *testing.T) {
	origGetUserDir := getUserDir
	defer func() { getUserDir = origGetUserDir }()
	getUserDir = func() (string, error) {
		return "", errors.New("no home")
	}
	assert.Empty(t, NewStore("").FilePath())
}
