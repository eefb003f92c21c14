package picker

import "fmt"

// OutcomeKind tells the host how to react to a picker operation.
type OutcomeKind int

const (
	// Navigated means the directory changed; render Outcome.Listing.
	Navigated OutcomeKind = iota
	// Completed means the picker is done; Path, Tag and Name are set.
	Completed
	// InvalidSelection means the chosen entry was rejected.
	InvalidSelection
	// EmptyName means the typed file name was blank.
	EmptyName
	// NoFolder means there is no current directory to save into.
	NoFolder
)

func (k OutcomeKind) String() string {
	switch k {
	case Navigated:
		return "navigated"
	case Completed:
		return "completed"
	case InvalidSelection:
		return "invalid_selection"
	case EmptyName:
		return "empty_name"
	case NoFolder:
		return "no_folder"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// IsError reports outcomes the host surfaces to the user as an error.
func (k OutcomeKind) IsError() bool {
	return k == InvalidSelection || k == EmptyName || k == NoFolder
}

type Outcome struct {
	Kind OutcomeKind

	// Path is the selected file or, for a typed name, the directory to save in.
	Path string
	Tag  string
	// Name is the base name of a chosen file or the trimmed typed name.
	Name string

	Listing Listing
}

func (o Outcome) HasName() bool {
	return o.Name != ""
}

func (o Outcome) String() string {
	switch o.Kind {
	case Completed:
		return fmt.Sprintf("%v{path=%q, tag=%q, name=%q}", o.Kind, o.Path, o.Tag, o.Name)
	case Navigated:
		return fmt.Sprintf("%v{dir=%q}", o.Kind, o.Listing.Dir.Path)
	default:
		return o.Kind.String()
	}
}
