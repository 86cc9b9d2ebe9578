// Package watch implements experiment watch mode: a directory watcher that
// picks up newly written experiment YAML files and hands their paths to the
// trainer.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/refgame/internal/logger"
)

// defaultDebounce is how long a file must stay quiet before it is considered
// fully written. Editors and scp produce several events per file.
const defaultDebounce = 500 * time.Millisecond

// Watcher watches a directory for new experiment definition files.
// Paths of settled .yaml/.yml files are delivered on the Files channel.
type Watcher struct {
	dir   string
	files chan string

	fsWatcher *fsnotify.Watcher

	// pending holds the debounce timer per file path.
	pending   map[string]*time.Timer
	pendingMu sync.Mutex

	debounce time.Duration

	wg     sync.WaitGroup
	logger *logger.Logger
}

// NewWatcher creates a watcher over dir. Start must be called before any
// files are delivered.
func NewWatcher(dir string, logger *logger.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file system watcher: %w", err)
	}

	return &Watcher{
		dir:       dir,
		files:     make(chan string),
		fsWatcher: fsWatcher,
		pending:   make(map[string]*time.Timer),
		debounce:  defaultDebounce,
		logger:    logger,
	}, nil
}

// Files returns the channel on which settled experiment file paths arrive.
// The channel stays open for the watcher's lifetime; consumers should select
// on their own context alongside it.
func (w *Watcher) Files() <-chan string {
	return w.files
}

// Start begins watching the directory. The watch loop runs until ctx is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", w.dir, err)
	}

	w.logger.Info().Str("dir", w.dir).Msg("watching for experiment files")

	w.wg.Add(1)
	go w.watchLoop(ctx)

	return nil
}

// Stop closes the underlying watcher and waits for the loop to exit.
func (w *Watcher) Stop() error {
	err := w.fsWatcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				w.cancelPending()
				return
			}

			if !isExperimentFile(event.Name) {
				continue
			}

			switch {
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				w.schedule(ctx, event.Name)
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				w.unschedule(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				w.cancelPending()
				return
			}
			w.logger.Err(err).Msg("experiment watcher error")
		}
	}
}

// schedule arms (or re-arms) the debounce timer for path. The path is
// delivered once no further events arrive for the debounce window.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}

	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.pendingMu.Lock()
		delete(w.pending, path)
		w.pendingMu.Unlock()

		select {
		case w.files <- path:
			w.logger.Info().Str("path", path).Msg("new experiment file detected")
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) unschedule(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
		delete(w.pending, path)
	}
}

func (w *Watcher) cancelPending() {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

func isExperimentFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
