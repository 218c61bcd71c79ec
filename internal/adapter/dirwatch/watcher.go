// Package dirwatch reports solution files as they are written to a directory.
package dirwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/svscodes/LeetLink/internal/domain/ports"
	"github.com/svscodes/LeetLink/internal/solution"
)

// DefaultDebounce lets editors finish their write and rename sequence.
const DefaultDebounce = 500 * time.Millisecond

// Handler is called once per settled file.
type Handler func(ctx context.Context, path string)

// Watcher watches a single directory, not its subdirectories.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   ports.Logger
}

// New creates a Watcher for dir.
func New(dir string, debounce time.Duration, logger ports.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dir: dir, debounce: debounce, logger: logger}
}

// Watch calls handle for every solution file created or written in the
// directory until ctx is cancelled. Bursts of events for the same file are
// collapsed into one call. Handlers run one at a time.
func (w *Watcher) Watch(ctx context.Context, handle Handler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info(ctx, "watching solutions directory", "dir", w.dir)

	pending := newDebouncer(w.debounce)
	defer pending.stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(context.Background(), "directory watcher stopped", "dir", w.dir)
			return nil

		case f := <-pending.ready:
			if pending.settle(f) {
				handle(ctx, f.path)
			}

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 || !IsSolutionFile(ev.Name) {
				continue
			}
			pending.schedule(ctx, ev.Name)

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, "directory watcher error", "error", watchErr)
		}
	}
}

type firing struct {
	path string
	gen  uint64
}

type pendingTimer struct {
	timer *time.Timer
	gen   uint64
}

// debouncer collapses bursts of events per path. Each schedule replaces the
// path's timer with a new generation; only the latest generation settles,
// so a timer that already fired but was not yet consumed is dropped.
// Owned by the Watch loop, except for the ready channel.
type debouncer struct {
	delay   time.Duration
	ready   chan firing
	pending map[string]pendingTimer
	gen     uint64
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:   delay,
		ready:   make(chan firing, 16),
		pending: map[string]pendingTimer{},
	}
}

func (d *debouncer) schedule(ctx context.Context, path string) {
	if p, ok := d.pending[path]; ok {
		p.timer.Stop()
	}
	d.gen++
	f := firing{path: path, gen: d.gen}
	d.pending[path] = pendingTimer{
		gen: f.gen,
		timer: time.AfterFunc(d.delay, func() {
			select {
			case d.ready <- f:
			case <-ctx.Done():
			}
		}),
	}
}

// settle reports whether f is the latest firing for its path and forgets
// the path if so.
func (d *debouncer) settle(f firing) bool {
	p, ok := d.pending[f.path]
	if !ok || p.gen != f.gen {
		return false
	}
	delete(d.pending, f.path)
	return true
}

func (d *debouncer) stop() {
	for _, p := range d.pending {
		p.timer.Stop()
	}
}

// IsSolutionFile reports whether path has a known language extension and
// is not a hidden or editor temporary file.
func IsSolutionFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	_, ok := solution.LanguageForExtension(filepath.Ext(base))
	return ok
}
