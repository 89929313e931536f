// Package watch reloads the naming configuration when its file changes
// on disk, delivering a freshly built manager for every successful reload.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/openrig/namekit/config"
	"github.com/openrig/namekit/convention"
)

// WatcherConfig configures the config file watcher
type WatcherConfig struct {
	// Path is the configuration file to watch
	Path string

	// DebounceDelay is how long to wait for more changes before reloading
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// ReloadEvent carries the result of one reload attempt
type ReloadEvent struct {
	// Path is the watched configuration file
	Path string

	// Manager is the freshly built manager (nil when Error is set)
	Manager *convention.Manager

	// Config is the parsed configuration behind Manager
	Config *config.Config

	// Error if loading or building failed; the previous manager stays valid
	Error error
}

// Watcher watches a configuration file and emits reload events. Editors
// that write via rename are handled by watching the parent directory.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: mark dirty, reload on the next tick
	pendingMu sync.Mutex
	pending   bool

	// Content hash of the last successfully loaded file
	lastHash string

	events chan ReloadEvent
}

// NewWatcher creates a watcher for the given configuration file.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.DebounceDelay == 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:  cfg,
		watcher: fsw,
		logger:  logger,
		events:  make(chan ReloadEvent, 16),
	}, nil
}

// Events returns the channel of reload events
func (w *Watcher) Events() <-chan ReloadEvent {
	return w.events
}

// Start begins watching the configuration file for changes
func (w *Watcher) Start(ctx context.Context) error {
	// Watch the directory rather than the file: most editors replace the
	// file by rename, which would drop a direct file watch.
	dir := filepath.Dir(w.config.Path)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	if data, err := os.ReadFile(w.config.Path); err == nil {
		w.lastHash = hashContent(data)
	}

	go w.processEvents(ctx)

	w.logger.Info("Config watcher started",
		"path", w.config.Path,
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop closes the underlying filesystem watcher. The events channel is
// closed by the processing goroutine once it has drained, so a pending
// reload can never send on a closed channel.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing. It owns the
// events channel and closes it on exit.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent marks the config dirty when the watched file changed
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.config.Path) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()

	w.logger.Debug("Config change detected",
		"path", w.config.Path,
		"op", event.Op.String())
}

// flushPending reloads the configuration if a change is pending
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	dirty := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if !dirty {
		return
	}

	data, err := os.ReadFile(w.config.Path)
	if err != nil {
		w.sendEvent(ReloadEvent{Path: w.config.Path, Error: err})
		return
	}

	hash := hashContent(data)
	if hash == w.lastHash {
		return
	}

	cfg, err := config.Parse(data)
	if err != nil {
		w.sendEvent(ReloadEvent{Path: w.config.Path, Error: err})
		return
	}

	manager, err := cfg.BuildManager()
	if err != nil {
		w.sendEvent(ReloadEvent{Path: w.config.Path, Error: err})
		return
	}

	w.lastHash = hash
	w.sendEvent(ReloadEvent{Path: w.config.Path, Manager: manager, Config: cfg})
}

// sendEvent sends an event to the output channel
func (w *Watcher) sendEvent(event ReloadEvent) {
	select {
	case w.events <- event:
		w.logger.Debug("Sent reload event",
			"path", event.Path,
			"error", event.Error)
	default:
		w.logger.Warn("Event channel full, dropping reload event",
			"path", event.Path)
	}
}

func hashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
