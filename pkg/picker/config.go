package picker

// DefaultDir is where a picker opens when no usable directory is known.
const DefaultDir = "/"

// Config is everything a host may customise for one picker.
type Config struct {
	// Ordering sorts listings; nil keeps the order the store returns.
	Ordering Ordering
	// DisplayFilter hides entries from listings; nil shows all.
	DisplayFilter Filter
	// SelectionFilter rejects chosen files; nil accepts all files.
	SelectionFilter Filter
	// PromptMessage is shown once when the picker opens, if not empty.
	PromptMessage string
	// DefaultDir replaces a missing or unreadable start directory.
	DefaultDir string
	// Tag is passed back untouched in completed outcomes.
	Tag string
}

// DefaultConfig orders directories first and filters nothing.
func DefaultConfig() Config {
	return Config{
		Ordering:   DirsFirst,
		DefaultDir: DefaultDir,
	}
}
