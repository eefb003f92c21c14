package cli

import (
	"fmt"
	"path/filepath"

	"github.com/filetug/filepicker/pkg/favorites"
	"github.com/filetug/filepicker/pkg/fsutils"
	"github.com/spf13/cobra"
)

func newFavCmd(e *env) *cobra.Command {
	favCmd := &cobra.Command{
		Use:   "fav",
		Short: "List favorite directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := e.favs.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, item := range items {
				_, _ = fmt.Fprintf(out, "%s\t%s\n", item.Path, item.Description)
			}
			return nil
		},
	}

	var description string
	addCmd := &cobra.Command{
		Use:   "add <dir>",
		Short: "Add a directory to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := absPath(args[0])
			if err != nil {
				return err
			}
			return e.favs.Add(favorites.Favorite{Path: dir, Description: description})
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "Description shown next to the directory")

	rmCmd := &cobra.Command{
		Use:   "rm <dir>",
		Short: "Remove a directory from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := absPath(args[0])
			if err != nil {
				return err
			}
			return e.favs.Delete(dir)
		},
	}

	favCmd.AddCommand(addCmd, rmCmd)
	return favCmd
}

func absPath(p string) (string, error) {
	return filepath.Abs(fsutils.ExpandHome(p))
}
