package masks

import (
	"fmt"

	"github.com/filetug/filepicker/pkg/files"
	"github.com/filetug/filepicker/pkg/picker"
)

// Mask is a named set of patterns. A name matches when an inclusive
// pattern matches it and no exclusive one does.
type Mask struct {
	Name     string    `yaml:"name"`
	Patterns []Pattern `yaml:"patterns"`
}

func (m *Mask) String() string {
	return fmt.Sprintf("Mask{Name: %q, Patterns: %+v}", m.Name, m.Patterns)
}

func (m *Mask) Match(fileName string) (bool, error) {
	var result bool
	for i := range m.Patterns {
		pattern := &m.Patterns[i]
		matched, err := pattern.Match(fileName)
		if err != nil {
			return false, err
		}
		if matched {
			if pattern.Type == Inclusive {
				result = true
			}
			if pattern.Type == Exclusive {
				return false, nil
			}
		}
	}
	return result, nil
}

// Filter compiles the mask into a filter over entry names.
// Directories are matched like files; wrap the result with
// picker.FilesOnly to keep them browsable.
func (m *Mask) Filter() (picker.Filter, error) {
	for i := range m.Patterns {
		if _, err := m.Patterns[i].compile(); err != nil {
			return nil, fmt.Errorf("mask %q: %w", m.Name, err)
		}
	}
	compiled := *m
	return func(entry files.Entry) bool {
		matched, _ := compiled.Match(entry.Name())
		return matched
	}, nil
}
