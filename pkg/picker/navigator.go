package picker

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/filetug/filepicker/pkg/files"
	"github.com/filetug/filepicker/pkg/fsutils"
	"github.com/filetug/filepicker/pkg/pickerstate"
	"github.com/rs/zerolog"
)

type Option func(nav *Navigator)

func WithLogger(logger zerolog.Logger) Option {
	return func(nav *Navigator) {
		nav.logger = logger
	}
}

// Navigator is the browsing state of one open picker: the current
// directory, its listing and the session holding the last file name.
// It is not safe for concurrent use; see BeginRefresh for listing
// off the caller's goroutine.
type Navigator struct {
	config  Config
	store   files.Store
	lister  *Lister
	session *Session
	logger  zerolog.Logger

	dir      files.Entry
	listing  Listing
	ticket   Ticket
	prompted bool
	closed   bool
}

func New(store files.Store, config Config, session *Session, options ...Option) *Navigator {
	if config.DefaultDir == "" {
		config.DefaultDir = DefaultDir
	}
	if session == nil {
		session = NewSession()
	}
	nav := &Navigator{
		config:  config,
		store:   store,
		session: session,
		logger:  zerolog.Nop(),
	}
	for _, o := range options {
		o(nav)
	}
	nav.lister = NewLister(store, nav.logger)
	return nav
}

// Open starts browsing at hint, or at the configured default directory
// when hint is empty, missing, unreadable or not a directory.
// A closed navigator stays closed and returns an empty listing.
func (nav *Navigator) Open(ctx context.Context, hint string) Listing {
	if nav.closed {
		return Listing{}
	}
	dirPath := absPath(hint)
	if dirPath == "" || !nav.isReadableDir(ctx, dirPath) {
		if hint != "" {
			nav.logger.Debug().Str("dir", hint).Str("fallback", nav.config.DefaultDir).
				Msg("start directory is not usable")
		}
		dirPath = absPath(nav.config.DefaultDir)
	}
	nav.dir = files.NewEntry(dirPath, true)
	return nav.Refresh(ctx)
}

func (nav *Navigator) isReadableDir(ctx context.Context, dirPath string) bool {
	if nav.store == nil {
		return false
	}
	info, err := nav.store.Stat(ctx, dirPath)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = nav.store.ReadDir(ctx, dirPath)
	return err == nil
}

// CurrentDir returns the directory being browsed; ok is false before Open.
func (nav *Navigator) CurrentDir() (dir files.Entry, ok bool) {
	return nav.dir, nav.dir.Path != ""
}

// Listing returns the last listing of the current directory.
func (nav *Navigator) Listing() Listing {
	return nav.listing
}

func (nav *Navigator) Config() Config {
	return nav.config
}

// Refresh lists the current directory again and replaces the listing.
func (nav *Navigator) Refresh(ctx context.Context) Listing {
	ticket := nav.BeginRefresh()
	listing := nav.ListFor(ctx, ticket)
	nav.Accept(ticket, listing)
	return nav.listing
}

// Ticket identifies one listing request of a Navigator.
type Ticket struct {
	seq uint64
	Dir files.Entry
}

// BeginRefresh starts a listing request for the current directory.
// Any request begun earlier becomes stale: Accept will reject its result.
func (nav *Navigator) BeginRefresh() Ticket {
	nav.ticket = Ticket{seq: nav.ticket.seq + 1, Dir: nav.dir}
	return nav.ticket
}

// ListFor reads the directory of ticket. It only touches the immutable
// configuration, so hosts may call it from a worker goroutine.
func (nav *Navigator) ListFor(ctx context.Context, ticket Ticket) Listing {
	return nav.lister.List(ctx, ticket.Dir, nav.config.DisplayFilter, nav.config.Ordering)
}

// Accept installs listing if ticket is the latest request.
func (nav *Navigator) Accept(ticket Ticket, listing Listing) bool {
	if nav.closed || ticket != nav.ticket {
		return false
	}
	nav.listing = listing
	return true
}

// NavigateInto makes entry the current directory.
func (nav *Navigator) NavigateInto(ctx context.Context, entry files.Entry) Outcome {
	if nav.closed || !entry.IsDir {
		return Outcome{Kind: InvalidSelection}
	}
	nav.dir = files.NewEntry(absPath(entry.Path), true)
	return Outcome{Kind: Navigated, Listing: nav.Refresh(ctx)}
}

// ChooseFile completes the picker with entry if the selection filter
// accepts it, and remembers its base name for the next picker.
func (nav *Navigator) ChooseFile(entry files.Entry) Outcome {
	if nav.closed || !Validate(entry, nav.config.SelectionFilter) {
		return Outcome{Kind: InvalidSelection}
	}
	selected := absPath(entry.Path)
	name := BaseName(selected)
	nav.session.SetLastFileName(name)
	return Outcome{
		Kind: Completed,
		Path: selected,
		Tag:  nav.config.Tag,
		Name: name,
	}
}

// Select handles a click on row index of the current listing.
func (nav *Navigator) Select(ctx context.Context, index int) Outcome {
	row, ok := nav.listing.At(index)
	if nav.closed || !ok {
		return Outcome{Kind: InvalidSelection}
	}
	if row.IsDir {
		return nav.NavigateInto(ctx, row.Entry)
	}
	return nav.ChooseFile(row.Entry)
}

// ConfirmTypedName completes the picker with a file name typed by the user,
// to be saved in the current directory.
func (nav *Navigator) ConfirmTypedName(typedName string) Outcome {
	if nav.closed {
		return Outcome{Kind: NoFolder}
	}
	outcome := ConfirmTypedName(typedName, nav.dir.Path)
	if outcome.Kind == Completed {
		outcome.Tag = nav.config.Tag
		nav.session.SetLastFileName(typedName)
	}
	return outcome
}

// ConfirmTypedName checks a typed file name against the directory it will
// be saved in. An empty currentDir means no directory is known.
func ConfirmTypedName(typedName, currentDir string) Outcome {
	name := strings.TrimSpace(typedName)
	if name == "" {
		return Outcome{Kind: EmptyName}
	}
	if currentDir == "" {
		return Outcome{Kind: NoFolder}
	}
	return Outcome{Kind: Completed, Path: currentDir, Name: name}
}

// SuggestedName is the text to pre-fill the host's file name field with.
func (nav *Navigator) SuggestedName() string {
	return nav.session.LastFileName()
}

// Prompt returns the configured prompt message the first time it is called.
func (nav *Navigator) Prompt() (string, bool) {
	if nav.prompted || nav.config.PromptMessage == "" {
		return "", false
	}
	nav.prompted = true
	return nav.config.PromptMessage, true
}

// Pause saves the current directory so Resume can restore it.
func (nav *Navigator) Pause(bridge pickerstate.Bridge) error {
	return bridge.Save(nav.dir.Path)
}

// Resume reopens the directory saved by the last Pause.
func (nav *Navigator) Resume(ctx context.Context, bridge pickerstate.Bridge) Listing {
	dir, _ := bridge.Load()
	return nav.Open(ctx, dir)
}

// Close ends the picker for good and forgets the last file name.
func (nav *Navigator) Close() {
	nav.session.Clear()
	nav.listing = Listing{}
	nav.closed = true
}

func absPath(p string) string {
	if p == "" {
		return ""
	}
	p = fsutils.ExpandHome(p)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
