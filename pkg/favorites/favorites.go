// Package favorites keeps a YAML list of directories the user jumps to often.
package favorites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/filetug/filepicker/pkg/fsutils"
	"github.com/filetug/filepicker/pkg/ftsettings"
	"gopkg.in/yaml.v3"
)

const favoritesFileName = "favorites.yaml"

var (
	ErrDuplicate   = errors.New("favorite already exists")
	ErrNotFound    = errors.New("favorite not found")
	errNoFavorites = errors.New("favorites file path is unknown")
)

var (
	yamlMarshal   = yaml.Marshal
	osUserHomeDir = os.UserHomeDir
	getUserDir    = ftsettings.GetUserDir
	osMkdirAll    = os.MkdirAll
	osWriteFile   = os.WriteFile
	readYAMLFile  = fsutils.ReadYAMLFile
)

type Favorite struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description,omitempty"`
}

// Dir is the absolute directory the favorite points at.
func (f Favorite) Dir() string {
	return filepath.Clean(fsutils.ExpandHome(f.Path))
}

// Store reads and writes favorites in a single YAML file.
type Store struct {
	filePath string
}

// NewStore returns a store backed by filePath, or by favorites.yaml in the
// picker user dir when filePath is empty.
func NewStore(filePath string) Store {
	if filePath == "" {
		if userDir, err := getUserDir(); err == nil {
			filePath = filepath.Join(userDir, favoritesFileName)
		}
	}
	return Store{filePath: filePath}
}

func (s Store) FilePath() string {
	return s.filePath
}

// List returns the saved favorites. A missing file yields the defaults
// without creating it.
func (s Store) List() (favorites []Favorite, err error) {
	if s.filePath == "" {
		return nil, errNoFavorites
	}
	if _, err = os.Stat(s.filePath); os.IsNotExist(err) {
		return defaultFavorites(), nil
	}
	if err = readYAMLFile(s.filePath, true, &favorites); err != nil {
		return nil, fmt.Errorf("failed to read favorites %s: %w", s.filePath, err)
	}
	return favorites, nil
}

// Add appends a directory, storing paths under the home dir with a ~ prefix.
func (s Store) Add(f Favorite) error {
	favorites, err := s.List()
	if err != nil {
		return err
	}
	f.Path = abbreviateHome(f.Path)
	for _, item := range favorites {
		if item.Dir() == f.Dir() {
			return fmt.Errorf("%w: %s", ErrDuplicate, f.Path)
		}
	}
	return s.write(append(favorites, f))
}

// Delete removes the favorite pointing at dir.
func (s Store) Delete(dir string) error {
	favorites, err := s.List()
	if err != nil {
		return err
	}
	target := Favorite{Path: dir}.Dir()
	updated := make([]Favorite, 0, len(favorites))
	for _, item := range favorites {
		if item.Dir() == target {
			continue
		}
		updated = append(updated, item)
	}
	if len(updated) == len(favorites) {
		return fmt.Errorf("%w: %s", ErrNotFound, dir)
	}
	return s.write(updated)
}

func (s Store) write(favorites []Favorite) error {
	data, err := yamlMarshal(favorites)
	if err != nil {
		return err
	}
	if err = osMkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	return osWriteFile(s.filePath, data, 0o644)
}

func abbreviateHome(p string) string {
	homeDir, err := osUserHomeDir()
	if err != nil || homeDir == "" || p == "" {
		return p
	}
	cleanHome := filepath.Clean(homeDir)
	cleanPath := filepath.Clean(fsutils.ExpandHome(p))
	if cleanPath == cleanHome {
		return "~"
	}
	if relative, ok := strings.CutPrefix(cleanPath, cleanHome+string(filepath.Separator)); ok {
		return filepath.Join("~", relative)
	}
	return cleanPath
}

func defaultFavorites() []Favorite {
	return []Favorite{
		{Path: "~", Description: "Home"},
		{Path: ftsettings.UserDir, Description: "Picker settings dir"},
	}
}
