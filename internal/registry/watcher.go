package registry

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/cristianoliveira/g-project/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reloads a CommandService when the project's settings directory
// changes, so validation files added mid-session gate screen-tasks in.
type Watcher struct {
	service  *CommandService
	root     string
	dir      string
	debounce time.Duration
	onReload func(err error)

	mu      sync.Mutex
	timer   *time.Timer
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewWatcher watches root/settingsDir. onReload, when set, is called after
// every reload attempt.
func NewWatcher(service *CommandService, root, settingsDir string, debounce time.Duration, onReload func(err error)) (*Watcher, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}
	if root == "" {
		return nil, fmt.Errorf("root cannot be empty")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		service:  service,
		root:     root,
		dir:      filepath.Join(root, settingsDir),
		debounce: debounce,
		onReload: onReload,
		stopped:  make(chan struct{}),
	}, nil
}

// ErrWatcherStarted is returned by Start on a watcher that already ran.
var ErrWatcherStarted = errors.New("watcher already started")

// Start begins watching. It returns once the underlying watcher is set up.
// A Watcher starts at most once.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return ErrWatcherStarted
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(w.root); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", w.root, err)
	}
	// The settings directory may not exist yet; it is added on creation.
	_ = fsw.Add(w.dir)

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	go w.loop(watchCtx, fsw)
	logging.Debug("watching settings directory", "dir", w.dir)
	return nil
}

// Stop ends watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-w.stopped
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer close(w.stopped)
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Name == w.dir && event.Has(fsnotify.Create) {
				if err := fsw.Add(w.dir); err != nil {
					logging.Warn("watching settings directory failed", "dir", w.dir, "error", err)
				}
			}
			w.schedule(ctx)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logging.Warn("settings watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	return name == w.dir || filepath.Dir(name) == w.dir
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		err := w.service.LoadCommands(ctx)
		if err != nil {
			logging.Warn("reloading commands failed", "error", err)
		}
		if w.onReload != nil {
			w.onReload(err)
		}
	})
}
