package backend

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/gradebook/internal/logging"
)

// AllCollections is reported when a change cannot be pinned to a single
// collection, e.g. a write to the SQLite database file.
const AllCollections = "*"

// Resolver maps a changed path to a collection name. ok is false for paths
// that do not belong to the store.
type Resolver func(path string) (name string, ok bool)

// Event lists the collections changed since the previous event.
type Event struct {
	Names []string
	Err   error
}

// All reports whether every collection must be reloaded.
func (e Event) All() bool {
	for _, name := range e.Names {
		if name == AllCollections {
			return true
		}
	}
	return false
}

// Watcher collects file system changes in the data directory. The menus
// poll it with Pending between frames, so nothing here ever blocks a reader.
type Watcher struct {
	fs      *fsnotify.Watcher
	resolve Resolver
	settle  *throttle

	mu      sync.Mutex
	pending map[string]struct{}
	err     error

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher watches dir. Changes are reported once no further change has
// arrived for settle.
func NewWatcher(dir string, resolve Resolver, settle time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		fs:      fsw,
		resolve: resolve,
		settle:  newThrottle(settle),
		pending: map[string]struct{}{},
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) &&
				!evt.Has(fsnotify.Remove) && !evt.Has(fsnotify.Rename) {
				continue
			}
			name, ok := w.resolve(evt.Name)
			if !ok {
				continue
			}
			w.mu.Lock()
			w.pending[name] = struct{}{}
			w.settle.touch()
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logging.Error(fmt.Errorf("watch data dir: %w", err))
			w.mu.Lock()
			w.err = err
			w.mu.Unlock()
		}
	}
}

// Pending returns the collected changes if the burst has settled. It never
// blocks.
func (w *Watcher) Pending() (Event, bool) {
	if w == nil {
		return Event{}, false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		evt := Event{Err: w.err}
		w.err = nil
		return evt, true
	}
	if len(w.pending) == 0 || !w.settle.ready() {
		return Event{}, false
	}
	names := make([]string, 0, len(w.pending))
	for name := range w.pending {
		names = append(names, name)
	}
	sort.Strings(names)
	w.pending = map[string]struct{}{}
	return Event{Names: names}, true
}

// Stop closes the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w == nil {
		return
	}
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	w.fs.Close()
	w.wg.Wait()
}
