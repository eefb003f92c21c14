package pickerstate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/filetug/filepicker/pkg/fsutils"
	"github.com/rs/zerolog"
)

// Bridge keeps the last browsed directory between picker sessions.
// An empty directory means "unset".
type Bridge interface {
	// Save replaces whatever was stored before, so Save("") clears the store.
	Save(currentDir string) error
	Load() (currentDir string, ok bool)
}

const defaultSettingsDir = "~/.filepicker"
const stateFileName = "filepicker-state.json"

// DefaultStateFilePath is where FileBridge keeps state unless told otherwise.
func DefaultStateFilePath() string {
	return filepath.Join(fsutils.ExpandHome(defaultSettingsDir), stateFileName)
}

type State struct {
	CurrentDir string `json:"current_dir,omitempty"`
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

var _ Bridge = (*FileBridge)(nil)

// FileBridge stores state as JSON in a single file.
type FileBridge struct {
	filePath string
	logger   zerolog.Logger
}

func NewFileBridge(filePath string, logger zerolog.Logger) *FileBridge {
	if filePath == "" {
		filePath = DefaultStateFilePath()
	}
	return &FileBridge{filePath: filePath, logger: logger}
}

func (b *FileBridge) FilePath() string {
	return b.filePath
}

func (b *FileBridge) Load() (string, bool) {
	var state State
	if err := readJSON(b.filePath, false, &state); err != nil {
		b.logger.Warn().Err(err).Str("file", b.filePath).Msg("failed to read picker state")
		return "", false
	}
	return state.CurrentDir, state.CurrentDir != ""
}

// Save writes a fresh state; nothing from the previous file is kept.
func (b *FileBridge) Save(currentDir string) error {
	settingsDirPath := filepath.Dir(b.filePath)
	if dirInfo, err := os.Stat(settingsDirPath); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to check state dir: %w", err)
		}
		if err = os.MkdirAll(settingsDirPath, 0o755); err != nil {
			return fmt.Errorf("failed to create state dir: %w", err)
		}
	} else if !dirInfo.IsDir() {
		return fmt.Errorf("state dir is not a directory: %s", settingsDirPath)
	}

	state := State{CurrentDir: currentDir}
	if err := writeJSON(b.filePath, state); err != nil {
		return fmt.Errorf("failed to write picker state: %w", err)
	}
	b.logger.Debug().Str("file", b.filePath).Str("current_dir", currentDir).Msg("picker state saved")
	return nil
}

var _ Bridge = (*MemoryBridge)(nil)

// MemoryBridge keeps state for the lifetime of the process.
type MemoryBridge struct {
	mu         sync.Mutex
	currentDir string
}

func (b *MemoryBridge) Save(currentDir string) error {
	b.mu.Lock()
	b.currentDir = currentDir
	b.mu.Unlock()
	return nil
}

func (b *MemoryBridge) Load() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentDir, b.currentDir != ""
}
