package dispatcher

import (
	"errors"
	"fmt"

	"github.com/atomicstack/gradebook/internal/backend"
	"github.com/atomicstack/gradebook/internal/gradebook"
	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/atomicstack/gradebook/internal/logging/events"
	"github.com/atomicstack/gradebook/internal/state"
	"github.com/atomicstack/gradebook/internal/storage"
)

type Result struct {
	Reloaded []string
	Removed  []string
	// Settings is true when the settings collection changed on disk.
	Settings bool
}

// Updated reports whether the table list changed.
func (r Result) Updated() bool {
	return len(r.Reloaded) > 0 || len(r.Removed) > 0
}

type Dispatcher struct {
	store  storage.Store
	tables state.TableStore
}

func New(store storage.Store, tables state.TableStore) *Dispatcher {
	return &Dispatcher{store: store, tables: tables}
}

// LoadAll replaces the table store with everything in storage.
func (d *Dispatcher) LoadAll() error {
	infos, err := d.store.List()
	if err != nil {
		return err
	}
	var tables []gradebook.Table
	for _, info := range infos {
		if !gradebook.IsTableCollection(info.Name) {
			continue
		}
		var t gradebook.Table
		if err := d.store.Load(info.Name, &t); err != nil {
			logging.Error(fmt.Errorf("load %s: %w", info.Name, err))
			continue
		}
		tables = append(tables, t)
	}
	d.tables.SetTables(tables)
	return nil
}

// Handle applies a watcher event to the table store.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	names := evt.Names
	if evt.All() {
		infos, err := d.store.List()
		if err != nil {
			logging.Error(fmt.Errorf("list collections: %w", err))
			return res
		}
		names = names[:0:0]
		present := map[string]bool{}
		for _, info := range infos {
			names = append(names, info.Name)
			present[info.Name] = true
		}
		for _, t := range d.tables.Tables() {
			if !present[t.CollectionName()] {
				names = append(names, t.CollectionName())
			}
		}
		res.Settings = true
	}
	for _, name := range names {
		if name == SettingsCollection {
			res.Settings = true
			continue
		}
		if !gradebook.IsTableCollection(name) {
			continue
		}
		var t gradebook.Table
		err := d.store.Load(name, &t)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			if id, _ := gradebook.TableID(name); d.tables.Forget(id) {
				res.Removed = append(res.Removed, name)
			}
		case err != nil:
			logging.Error(fmt.Errorf("reload %s: %w", name, err))
		default:
			if d.tables.Reload(t) {
				res.Reloaded = append(res.Reloaded, name)
			}
		}
	}
	if res.Updated() {
		events.Store.Reload(append(append([]string{}, res.Reloaded...), res.Removed...))
	}
	return res
}

// SettingsCollection stores user preferences such as the UI language.
const SettingsCollection = "settings"
