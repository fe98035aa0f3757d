// Package app wires storage, localization and the terminal to the menus.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/atomicstack/gradebook/internal/backend"
	"github.com/atomicstack/gradebook/internal/data/dispatcher"
	"github.com/atomicstack/gradebook/internal/gradebook"
	"github.com/atomicstack/gradebook/internal/i18n"
	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/atomicstack/gradebook/internal/logging/events"
	"github.com/atomicstack/gradebook/internal/menu"
	"github.com/atomicstack/gradebook/internal/selector"
	"github.com/atomicstack/gradebook/internal/state"
	"github.com/atomicstack/gradebook/internal/storage"
	"github.com/atomicstack/gradebook/internal/terminal"
	"github.com/atomicstack/gradebook/internal/theme"
	"github.com/atomicstack/gradebook/internal/ui/form"
)

// Config describes user-provided application options.
type Config struct {
	DataDir  string
	Store    string
	Language string
	Width    int
	Height   int
	NoClear  bool
	// NoticeDelay is how long the invalid-input notice stays up.
	NoticeDelay time.Duration
}

// settleDelay groups bursts of writes by other programs into one reload.
const settleDelay = 300 * time.Millisecond

const defaultLanguage = "en"

// IO is the user-facing side of a session.
type IO struct {
	Screen    selector.Screen
	Keys      selector.KeySource
	Prompter  menu.Prompter
	Clipboard func(string) error
}

// Run opens the controlling terminal and runs the main menu until the user
// quits.
func Run(cfg Config) error {
	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := term.Close(); err != nil {
			logging.Error(err)
		}
	}()
	term.SetFixedSize(cfg.Width, cfg.Height)
	return RunWith(cfg, IO{
		Screen:    term,
		Keys:      term,
		Prompter:  form.Runner{In: term.Input(), Out: term.Output(), Pending: term.Drain},
		Clipboard: clipboard.WriteAll,
	})
}

// RunWith runs a session on the given IO. Unsaved changes are written back
// when the session ends, including after Ctrl+C.
func RunWith(cfg Config, io IO) (err error) {
	store, err := storage.Open(cfg.Store, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close store: %w", cerr)
		}
	}()

	catalog, err := i18n.New(startLanguage(cfg, store))
	if err != nil {
		return err
	}

	tables := state.NewTableStore()
	disp := dispatcher.New(store, tables)
	if err := disp.LoadAll(); err != nil {
		return fmt.Errorf("load tables: %w", err)
	}

	dir, resolve := watchTarget(store)
	watcher, werr := backend.NewWatcher(dir, resolve, settleDelay)
	if werr != nil {
		// External edits are then picked up on the next start only.
		logging.Error(werr)
	}
	defer watcher.Stop()

	opts := selector.DefaultOptions()
	opts.ClearOnSwitch = !cfg.NoClear
	opts.NoticeDelay = cfg.NoticeDelay

	ctx := &menu.Context{
		Screen:    io.Screen,
		Keys:      io.Keys,
		Options:   opts,
		Styles:    theme.Default(),
		Catalog:   catalog,
		Tables:    tables,
		Store:     store,
		Prompter:  io.Prompter,
		Clipboard: io.Clipboard,
		Sync: func() {
			evt, ok := watcher.Pending()
			if !ok {
				return
			}
			if res := disp.Handle(evt); res.Settings && cfg.Language == "" {
				applySettings(catalog, store)
			}
		},
	}

	runErr := menu.RunMain(ctx, menu.BuildRegistry())
	switch {
	case errors.Is(runErr, menu.ErrInterrupted):
		events.App.Interrupted()
		runErr = nil
	case errors.Is(runErr, menu.ErrInputClosed):
		runErr = nil
	}

	saved, flushErr := Flush(store, tables)
	events.App.Stop(saved)
	if runErr != nil {
		return runErr
	}
	return flushErr
}

// startLanguage picks the -lang value, then the saved choice, then English.
func startLanguage(cfg Config, store storage.Store) string {
	if cfg.Language != "" {
		return cfg.Language
	}
	settings, err := menu.LoadSettings(store)
	if err != nil {
		logging.Error(err)
		return defaultLanguage
	}
	if settings.Language == "" || !i18n.Supported(settings.Language) {
		return defaultLanguage
	}
	return settings.Language
}

func applySettings(catalog *i18n.Catalog, store storage.Store) {
	settings, err := menu.LoadSettings(store)
	if err != nil {
		logging.Error(err)
		return
	}
	if settings.Language == "" || settings.Language == catalog.Language() {
		return
	}
	if err := catalog.SetLanguage(settings.Language); err != nil {
		logging.Error(err)
	}
}

// watchTarget returns the directory to watch and how changed paths map to
// collections. A SQLite database cannot be narrowed to one collection.
func watchTarget(store storage.Store) (string, backend.Resolver) {
	if fs, ok := store.(*storage.FileStore); ok {
		return fs.Location(), fs.CollectionName
	}
	db := store.Location()
	return filepath.Dir(db), func(path string) (string, bool) {
		if strings.HasPrefix(filepath.Base(path), filepath.Base(db)) {
			return backend.AllCollections, true
		}
		return "", false
	}
}

// Flush writes dirty tables and pending deletions. It keeps going after a
// failure and returns the first error.
func Flush(store storage.Store, tables state.TableStore) (int, error) {
	var firstErr error
	saved := 0
	for _, t := range tables.Dirty() {
		if err := store.Save(t.CollectionName(), t); err != nil {
			logging.Errorf("save table %q: %w", t.Name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		tables.MarkClean(t.ID)
		saved++
	}
	for _, id := range tables.Removed() {
		name := gradebook.Table{ID: id}.CollectionName()
		err := store.Delete(name)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			logging.Errorf("delete %s: %w", name, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		tables.MarkClean(id)
		saved++
	}
	return saved, firstErr
}
