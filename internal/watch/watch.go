// Package watch re-runs a callback when the top level of a project
// directory changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last event before the
// callback runs
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches a single directory, non-recursively. Classification only
// looks at top-level entries, so nested changes are irrelevant.
type Watcher struct {
	dir      string
	debounce time.Duration
	ignore   map[string]struct{}
	logger   *zap.Logger
	fs       *fsnotify.Watcher
}

// Option configures the watcher
type Option func(*Watcher)

// WithDebounce sets the quiet period
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithIgnore skips events for paths, along with the temp files written
// next to them during an atomic replace
func WithIgnore(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				w.ignore[abs] = struct{}{}
			}
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New starts watching dir. Events are buffered until Run is called.
func New(dir string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	w := &Watcher{
		dir:      abs,
		debounce: DefaultDebounce,
		ignore:   make(map[string]struct{}),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fs.Add(abs); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch %s: %w", abs, err)
	}
	w.fs = fs
	return w, nil
}

// Dir returns the absolute watched directory
func (w *Watcher) Dir() string {
	return w.dir
}

// Close stops watching without running
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run calls onChange after each burst of relevant events until ctx is
// done. Callback errors are logged, not returned. The watcher is closed
// when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context) error) error {
	defer w.fs.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change", zap.String("op", event.Op.String()), zap.String("path", event.Name))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			if err := onChange(ctx); err != nil {
				w.logger.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) &&
		!event.Has(fsnotify.Remove) {
		return false
	}
	return !w.ignored(event.Name)
}

func (w *Watcher) ignored(path string) bool {
	path = filepath.Clean(path)
	if _, ok := w.ignore[path]; ok {
		return true
	}
	base := filepath.Base(path)
	for p := range w.ignore {
		if filepath.Dir(p) == filepath.Dir(path) &&
			strings.HasPrefix(base, "."+filepath.Base(p)+".tmp-") {
			return true
		}
	}
	return false
}
