package cliconfig

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/paycalc/pkg/log"
)

// DefaultDebounceDelay is the wait after a file change before reloading.
const DefaultDebounceDelay = 100 * time.Millisecond

// Live holds the current configuration for readers on other goroutines.
type Live struct {
	mu  sync.RWMutex
	cfg Config
}

// NewLive creates a holder with an initial configuration.
func NewLive(cfg Config) *Live {
	return &Live{cfg: cfg}
}

// Get returns the current configuration.
func (l *Live) Get() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Set replaces the current configuration.
func (l *Live) Set(cfg Config) {
	l.mu.Lock()
	l.cfg = cfg
	l.mu.Unlock()
}

// Watcher reloads the config file through a Loader when it changes and
// publishes valid results to a Live holder.
type Watcher struct {
	loader        Loader
	live          *Live
	logger        log.Logger
	debounceDelay time.Duration

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for loader.Path.
func NewWatcher(loader Loader, live *Live, logger log.Logger) *Watcher {
	return &Watcher{
		loader:        loader,
		live:          live,
		logger:        logger,
		debounceDelay: DefaultDebounceDelay,
	}
}

// Run watches the directory of the config file until ctx is done. Editors
// often replace files by rename, so the directory is watched rather than
// the file itself.
func (w *Watcher) Run(ctx context.Context) error {
	if w.loader.Path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.loader.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.logger.Debug("watching config", log.String("path", w.loader.Path))

	name := filepath.Base(w.loader.Path)
	for {
		select {
		case <-ctx.Done():
			w.stopDebounce()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounceReload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		w.reload()
	})
}

func (w *Watcher) stopDebounce() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
}

// reload keeps the previous configuration when the new one does not load.
func (w *Watcher) reload() {
	cfg, err := w.loader.Load()
	if err != nil {
		w.logger.Warn("config reload rejected", log.Err(err))
		return
	}
	w.live.Set(cfg)
	w.logger.Info("config reloaded",
		log.String("default_percent", cfg.DefaultPercent),
		log.String("default_tier", cfg.DefaultTier),
		log.String("export_path", cfg.ExportPath),
	)
}
