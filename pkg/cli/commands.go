package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/filetug/filepicker/pkg/picker"
	"github.com/spf13/cobra"
)

// OutcomeError is returned when the picker ends with an outcome the user
// has to be told about.
type OutcomeError struct {
	Kind picker.OutcomeKind
}

func (e *OutcomeError) Error() string {
	switch e.Kind {
	case picker.InvalidSelection:
		return "invalid file"
	case picker.EmptyName:
		return "no file name given"
	case picker.NoFolder:
		return "no folder selected"
	default:
		return e.Kind.String()
	}
}

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List a directory, or the last browsed one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			nav := e.newNavigator()
			out := cmd.OutOrStdout()
			open(ctx, e, nav, args)
			printPrompt(out, nav)
			printListing(out, nav.Listing())
			return e.pause(nav)
		},
	}
}

func newChooseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "choose <path>",
		Short: "Pick an entry: a directory is entered, a file is validated and returned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			nav := e.newNavigator()
			out := cmd.OutOrStdout()

			target, err := absPath(args[0])
			if err != nil {
				return err
			}
			nav.Open(ctx, filepath.Dir(target))
			outcome := picker.Outcome{Kind: picker.InvalidSelection}
			if index := indexOf(nav.Listing(), target); index >= 0 {
				outcome = nav.Select(ctx, index)
			}
			return e.finish(out, nav, outcome)
		},
	}
}

func newSaveCmd(e *env) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Confirm a file name to save in the current directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			nav := e.newNavigator()
			var openArgs []string
			if dir != "" {
				openArgs = []string{dir}
			}
			open(ctx, e, nav, openArgs)
			outcome := nav.ConfirmTypedName(args[0])
			return e.finish(cmd.OutOrStdout(), nav, outcome)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to save in (default: last browsed)")
	return cmd
}

func open(ctx context.Context, e *env, nav *picker.Navigator, args []string) {
	if len(args) > 0 {
		nav.Open(ctx, args[0])
		return
	}
	nav.Resume(ctx, e.bridge)
}

func (e *env) finish(out io.Writer, nav *picker.Navigator, outcome picker.Outcome) error {
	printOutcome(out, outcome)
	if err := e.pause(nav); err != nil {
		return err
	}
	if outcome.Kind.IsError() {
		return &OutcomeError{Kind: outcome.Kind}
	}
	return nil
}

func (e *env) pause(nav *picker.Navigator) error {
	if err := nav.Pause(e.bridge); err != nil {
		return fmt.Errorf("failed to save picker state: %w", err)
	}
	return nil
}

func indexOf(listing picker.Listing, path string) int {
	for i, row := range listing.Rows() {
		if row.IsParent {
			continue
		}
		if row.Path == path {
			return i
		}
	}
	return -1
}
