package effects

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports effects whose override files changed on disk.
// It runs its own goroutine; the names it sends are consumed on the render thread,
// which is the only place programs are recompiled.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	log     *log.Logger

	closeOnce sync.Once
}

// Watch starts watching dir (non-recursively) for override file writes.
func Watch(dir string, logger *log.Logger) (*Watcher, error) {
	if dir == "" {
		return nil, errors.New("effects: empty watch directory")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("effects: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("effects: watch %s: %w", dir, err)
	}
	w := &Watcher{
		fs:      fsw,
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		log:     logger,
	}
	go w.run()
	return w, nil
}

// Drain returns every pending change without blocking, deduplicated, in arrival order.
func (w *Watcher) Drain() []string {
	var names []string
	seen := map[string]bool{}
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

// Close stops the watcher goroutine.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name, ok := EffectForFile(ev.Name)
			if !ok {
				continue
			}
			select {
			case w.changes <- name:
			default:
				w.log.Debug("shader reload queue full, dropping", "effect", name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watch error", "err", err)
		}
	}
}
