package ftsettings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/filetug/filepicker/pkg/fsutils"
	"github.com/filetug/filepicker/pkg/masks"
	"github.com/filetug/filepicker/pkg/picker"
)

var (
	ErrUnknownMask     = errors.New("unknown mask")
	ErrUnknownOrdering = errors.New("unknown ordering")
)

const (
	OrderingDirsFirst = "dirs_first"
	OrderingNone      = "none"
)

// Settings is the YAML form of a picker configuration.
type Settings struct {
	DefaultDir string `yaml:"default_dir,omitempty"`
	Prompt     string `yaml:"prompt,omitempty"`
	Tag        string `yaml:"tag,omitempty"`
	// Ordering is "dirs_first" (default) or "none".
	Ordering   string   `yaml:"ordering,omitempty"`
	HideHidden bool     `yaml:"hide_hidden,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	// DisplayMask and SelectMask name a built-in or custom mask.
	DisplayMask string       `yaml:"display_mask,omitempty"`
	SelectMask  string       `yaml:"select_mask,omitempty"`
	Masks       []masks.Mask `yaml:"masks,omitempty"`
}

var readYAML = fsutils.ReadYAMLFile

// Load reads settings from filePath. A missing file yields zero settings.
func Load(filePath string) (settings Settings, err error) {
	if err = readYAML(filePath, false, &settings); err != nil {
		return settings, fmt.Errorf("failed to read settings %s: %w", filePath, err)
	}
	return settings, nil
}

// Config resolves masks and ordering into a picker configuration.
func (s Settings) Config() (config picker.Config, err error) {
	config = picker.DefaultConfig()
	if s.DefaultDir != "" {
		config.DefaultDir = s.DefaultDir
	}
	config.PromptMessage = s.Prompt
	config.Tag = s.Tag

	switch strings.ToLower(s.Ordering) {
	case "", OrderingDirsFirst:
		config.Ordering = picker.DirsFirst
	case OrderingNone:
		config.Ordering = nil
	default:
		return config, fmt.Errorf("%w: %q", ErrUnknownOrdering, s.Ordering)
	}

	display := picker.DisplayOptions{
		ShowHidden: !s.HideHidden,
		Extensions: s.Extensions,
	}
	if s.DisplayMask != "" {
		if display.Mask, err = s.maskFilter(s.DisplayMask); err != nil {
			return config, err
		}
	}
	config.DisplayFilter = display.Filter()

	if s.SelectMask != "" {
		if config.SelectionFilter, err = s.maskFilter(s.SelectMask); err != nil {
			return config, err
		}
	}
	return config, nil
}

func (s Settings) maskFilter(name string) (picker.Filter, error) {
	all := append(append([]masks.Mask{}, s.Masks...), masks.BuiltIn()...)
	mask, ok := masks.Find(name, all)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMask, name)
	}
	return mask.Filter()
}
