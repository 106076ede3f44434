// Package filewatch reports writes to a set of files using fsnotify.
//
// Each file's parent directory is watched rather than the file itself so
// that editors which save by rename-and-replace keep triggering events.
package filewatch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// Watcher calls registered callbacks when a watched file is written or
// recreated.
type Watcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.RWMutex
	files     map[string]struct{}
	dirs      map[string]struct{}
	callbacks []func(string)
	done      chan struct{}
	stopOnce  sync.Once
	logger    *slog.Logger

	// interval is the minimum time between two notifications for one file.
	// Zero disables the limit.
	interval time.Duration
	limiters map[string]*rate.Limiter
	ctx      context.Context
	cancel   context.CancelFunc
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger used for watch events.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithMinInterval delays notifications so that one file is reported at
// most once per interval. Events arriving meanwhile wait their turn.
func WithMinInterval(interval time.Duration) Option {
	return func(w *Watcher) {
		w.interval = interval
	}
}

// New creates a Watcher with no files.
func New(opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		done:     make(chan struct{}),
		logger:   slog.Default(),
		limiters: make(map[string]*rate.Limiter),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Watch adds path to the watched set.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.dirs[dir]; !ok {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Error("failed to watch directory", "path", dir, "error", err)
			return err
		}
		w.dirs[dir] = struct{}{}
	}
	w.files[abs] = struct{}{}

	w.logger.Debug("watching file", "path", abs)
	return nil
}

// OnChange registers fn to receive the absolute path of a changed file.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Start delivers events until Stop is called. It blocks.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.handle(event.Name, event.Op)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

// StartAsync runs Start in a new goroutine.
func (w *Watcher) StartAsync() {
	go w.Start()
}

// Stop ends Start and releases the fsnotify watcher. Calling it again is a
// no-op.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		w.cancel()
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) handle(name string, op fsnotify.Op) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	w.mu.RLock()
	_, watched := w.files[abs]
	w.mu.RUnlock()
	if !watched {
		return
	}

	if lim := w.limiter(abs); lim != nil {
		if err := lim.Wait(w.ctx); err != nil {
			return
		}
	}

	w.logger.Debug("watched file changed", "path", abs, "op", op.String())
	w.notify(abs)
}

// limiter returns the rate limiter of path, or nil without a min interval.
func (w *Watcher) limiter(path string) *rate.Limiter {
	if w.interval <= 0 {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	lim, ok := w.limiters[path]
	if !ok {
		lim = rate.NewLimiter(rate.Every(w.interval), 1)
		w.limiters[path] = lim
	}
	return lim
}

func (w *Watcher) notify(path string) {
	w.mu.RLock()
	callbacks := make([]func(string), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, fn := range callbacks {
		fn(path)
	}
}
