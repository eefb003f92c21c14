package cli

import (
	"fmt"
	"io"

	"github.com/filetug/filepicker/pkg/picker"
)

func rowKind(row picker.Row) string {
	switch {
	case row.IsParent:
		return ".."
	case row.IsDir:
		return "d"
	default:
		return "f"
	}
}

func printListing(w io.Writer, listing picker.Listing) {
	_, _ = fmt.Fprintf(w, "# %s\n", listing.Dir.Path)
	for _, row := range listing.Rows() {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", rowKind(row), row.Path)
	}
}

func printPrompt(w io.Writer, nav *picker.Navigator) {
	if prompt, ok := nav.Prompt(); ok {
		_, _ = fmt.Fprintf(w, "> %s\n", prompt)
	}
}

func printOutcome(w io.Writer, outcome picker.Outcome) {
	switch outcome.Kind {
	case picker.Navigated:
		printListing(w, outcome.Listing)
	case picker.Completed:
		_, _ = fmt.Fprintf(w, "%v\t%s\t%s\t%s\n", outcome.Kind, outcome.Path, outcome.Tag, outcome.Name)
	default:
		_, _ = fmt.Fprintf(w, "%v\n", outcome.Kind)
	}
}
