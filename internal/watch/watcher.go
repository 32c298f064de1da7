// Package watch re-runs site resolution when the configuration file or its
// dotenv files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// DefaultDebounce coalesces editor save bursts into one reload.
const DefaultDebounce = 300 * time.Millisecond

// ReloadFunc is called after a debounced change. Errors are logged and do
// not stop the watcher.
type ReloadFunc func(ctx context.Context) error

// ConfigWatcher monitors a configuration file and triggers reloads.
type ConfigWatcher struct {
	configPath   string
	watched      map[string]struct{}
	watcher      *fsnotify.Watcher
	reload       ReloadFunc
	logger       *slog.Logger
	reloadChan   chan struct{}
	debounceTime time.Duration

	mu      sync.Mutex
	running sync.WaitGroup
}

// New creates a watcher for configPath.
func New(configPath string, reload ReloadFunc, logger *slog.Logger) (*ConfigWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &ConfigWatcher{
		configPath: absPath,
		watched: map[string]struct{}{
			filepath.Base(absPath): {},
			".env":                 {},
			".env.local":           {},
		},
		watcher:      watcher,
		reload:       reload,
		logger:       logger,
		reloadChan:   make(chan struct{}, 1),
		debounceTime: DefaultDebounce,
	}, nil
}

// SetDebounce overrides the debounce interval. Call before Run.
func (cw *ConfigWatcher) SetDebounce(d time.Duration) {
	cw.debounceTime = d
}

// Run watches until ctx is canceled. The directory is watched rather than
// the file so editors that replace the file on save keep working.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	defer func() {
		if err := cw.watcher.Close(); err != nil {
			cw.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	configDir := filepath.Dir(cw.configPath)
	if err := cw.watcher.Add(configDir); err != nil {
		return fmt.Errorf("failed to watch config directory %s: %w", configDir, err)
	}
	cw.logger.Info("Watching configuration", logfields.Path(cw.configPath))

	cw.running.Add(1)
	go func() {
		defer cw.running.Done()
		cw.reloadLoop(ctx)
	}()
	cw.watchLoop(ctx)
	cw.running.Wait()
	return nil
}

func (cw *ConfigWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if _, ok := cw.watched[filepath.Base(event.Name)]; !ok {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				cw.logger.Debug("Config change detected", logfields.Path(event.Name), logfields.Event(event.Op.String()))
				cw.triggerReload()
			case event.Has(fsnotify.Remove):
				cw.logger.Warn("Config file removed", logfields.Path(event.Name))
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (cw *ConfigWatcher) reloadLoop(ctx context.Context) {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-cw.reloadChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(cw.debounceTime, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			cw.performReload(ctx)
		}
	}
}

// triggerReload requests a debounced reload; pending requests coalesce.
func (cw *ConfigWatcher) triggerReload() {
	select {
	case cw.reloadChan <- struct{}{}:
	default:
	}
}

func (cw *ConfigWatcher) performReload(ctx context.Context) {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cw.logger.Info("Reloading configuration", logfields.Path(cw.configPath))
	if err := cw.reload(ctx); err != nil {
		cw.logger.Error("Failed to reload configuration", logfields.Error(err))
		return
	}
	cw.logger.Info("Configuration reloaded successfully")
}
