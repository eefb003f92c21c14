package picker

import (
	"path/filepath"
	"strings"

	"github.com/filetug/filepicker/pkg/files"
)

// Filter decides whether an entry is accepted. A nil Filter accepts everything.
type Filter func(entry files.Entry) bool

func (f Filter) Accept(entry files.Entry) bool {
	if f == nil {
		return true
	}
	return f(entry)
}

// All accepts an entry only when every non-nil filter accepts it.
func All(filters ...Filter) Filter {
	filters = nonNil(filters)
	if len(filters) == 0 {
		return nil
	}
	return func(entry files.Entry) bool {
		for _, f := range filters {
			if !f(entry) {
				return false
			}
		}
		return true
	}
}

// Any accepts an entry when at least one non-nil filter accepts it.
func Any(filters ...Filter) Filter {
	filters = nonNil(filters)
	if len(filters) == 0 {
		return nil
	}
	return func(entry files.Entry) bool {
		for _, f := range filters {
			if f(entry) {
				return true
			}
		}
		return false
	}
}

// FilesOnly applies f to files and lets directories through,
// so a display filter never blocks navigation.
func FilesOnly(f Filter) Filter {
	if f == nil {
		return nil
	}
	return func(entry files.Entry) bool {
		return entry.IsDir || f(entry)
	}
}

func nonNil(filters []Filter) []Filter {
	result := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			result = append(result, f)
		}
	}
	return result
}

// DisplayOptions are the common visibility switches of a listing.
type DisplayOptions struct {
	ShowHidden bool
	HideDirs   bool
	// Extensions are matched case-insensitively against files, e.g. ".gpx".
	Extensions []string
	Mask       Filter
}

func (o DisplayOptions) IsEmpty() bool {
	return o.ShowHidden && !o.HideDirs && len(o.Extensions) == 0 && o.Mask == nil
}

// Filter returns nil when the options accept every entry.
func (o DisplayOptions) Filter() Filter {
	if o.IsEmpty() {
		return nil
	}
	return o.IsVisible
}

func (o DisplayOptions) IsVisible(entry files.Entry) bool {
	name := entry.Name()
	if !o.ShowHidden && strings.HasPrefix(name, ".") {
		return false
	}
	if entry.IsDir {
		return !o.HideDirs
	}
	if len(o.Extensions) > 0 {
		ext := filepath.Ext(name)
		var matched bool
		for _, want := range o.Extensions {
			if strings.EqualFold(ext, want) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return o.Mask.Accept(entry)
}
