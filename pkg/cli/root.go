// Package cli is a command line host for the picker: it prints listings and
// outcomes instead of rendering them.
package cli

import (
	"fmt"
	"io"

	"github.com/filetug/filepicker/pkg/favorites"
	"github.com/filetug/filepicker/pkg/files"
	"github.com/filetug/filepicker/pkg/files/osfile"
	"github.com/filetug/filepicker/pkg/ftsettings"
	"github.com/filetug/filepicker/pkg/logging"
	"github.com/filetug/filepicker/pkg/picker"
	"github.com/filetug/filepicker/pkg/pickerstate"
	"github.com/filetug/filepicker/pkg/profiling"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session lives as long as the process, like the name field of a picker
// that is reopened several times.
var session = picker.NewSession()

var newStore = func() files.Store {
	return osfile.NewStore("")
}

type options struct {
	settingsFile string
	stateFile    string
	favFile      string
	verbose      bool
	cpuProfile   string
	memProfile   string
}

// env is what every sub-command needs to drive a navigator.
type env struct {
	logger zerolog.Logger
	config picker.Config
	bridge pickerstate.Bridge
	store  files.Store
	favs   favorites.Store

	stopProfiling []func()
}

func (e *env) newNavigator() *picker.Navigator {
	return picker.New(e.store, e.config, session, picker.WithLogger(e.logger))
}

// NewRootCmd creates the root command of the picker CLI.
func NewRootCmd() *cobra.Command {
	var opts options
	e := new(env)

	rootCmd := &cobra.Command{
		Use:           "filepicker",
		Short:         "Browse directories and pick a file to open or a name to save as",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.init(cmd.ErrOrStderr(), opts); err != nil {
				return err
			}
			e.startProfiling(opts)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.settingsFile, "settings", "s", "", "Picker settings file (default ~/.filepicker/picker.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.stateFile, "state", "", "File keeping the last browsed directory (default ~/.filepicker/filepicker-state.json)")
	rootCmd.PersistentFlags().StringVar(&opts.favFile, "favorites", "", "Favorites file (default ~/.filepicker/favorites.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfile, "memprofile", "", "Write a heap profile to this file on exit")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	rootCmd.AddCommand(
		newListCmd(e),
		newChooseCmd(e),
		newSaveCmd(e),
		newFavCmd(e),
	)
	e.stopProfilingAfterRun(rootCmd)
	return rootCmd
}

// stopProfilingAfterRun wraps RunE of cmd and its sub-commands.
// Post-run hooks are skipped when RunE fails, a deferred stop is not.
func (e *env) stopProfilingAfterRun(cmd *cobra.Command) {
	if runE := cmd.RunE; runE != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			defer e.stopProfilers()
			return runE(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		e.stopProfilingAfterRun(sub)
	}
}

func (e *env) init(stderr io.Writer, opts options) error {
	e.logger = logging.New(stderr, opts.verbose)

	settingsFile := opts.settingsFile
	if settingsFile == "" {
		var err error
		if settingsFile, err = ftsettings.DefaultSettingsFilePath(); err != nil {
			e.logger.Warn().Err(err).Msg("using default picker settings")
		}
	}
	var settings ftsettings.Settings
	if settingsFile != "" {
		var err error
		if settings, err = ftsettings.Load(settingsFile); err != nil {
			return err
		}
	}
	config, err := settings.Config()
	if err != nil {
		return fmt.Errorf("invalid settings %s: %w", settingsFile, err)
	}
	e.config = config
	e.bridge = pickerstate.NewFileBridge(opts.stateFile, e.logger)
	e.store = newStore()
	e.favs = favorites.NewStore(opts.favFile)
	return nil
}

func (e *env) startProfiling(opts options) {
	if opts.cpuProfile != "" {
		e.stopProfiling = append(e.stopProfiling, profiling.DoCPUProfiling(opts.cpuProfile))
	}
	if opts.memProfile != "" {
		e.stopProfiling = append(e.stopProfiling, profiling.DoMemProfiling(opts.memProfile))
	}
}

func (e *env) stopProfilers() {
	for _, stop := range e.stopProfiling {
		stop()
	}
	e.stopProfiling = nil
}
