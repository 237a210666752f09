package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jenniferhuangg/ConcertCloud/internal/service"
	"github.com/jenniferhuangg/ConcertCloud/pkg/logger"
)

// WatchScanWorkerConfig contains configuration for the watch scan worker
type WatchScanWorkerConfig struct {
	// ScanInterval is the interval between watchlist scans
	ScanInterval time.Duration
}

// DefaultWatchScanWorkerConfig returns default configuration
func DefaultWatchScanWorkerConfig() *WatchScanWorkerConfig {
	return &WatchScanWorkerConfig{
		ScanInterval: 2 * time.Minute,
	}
}

// WatchScanWorker periodically runs the watchlist scan. The scan itself is
// insert-or-ignore, so the worker is safe to run alongside manual scan
// triggers from the API.
type WatchScanWorker struct {
	scanService service.ScanService
	config      *WatchScanWorkerConfig
	log         *logger.Logger
	stopCh      chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
	running     bool

	// Stats
	totalCreated int64
	lastScanTime time.Time
}

// NewWatchScanWorker creates a new watch scan worker
func NewWatchScanWorker(scanService service.ScanService, config *WatchScanWorkerConfig) *WatchScanWorker {
	if config == nil {
		config = DefaultWatchScanWorkerConfig()
	}
	return &WatchScanWorker{
		scanService: scanService,
		config:      config,
		log:         logger.Get(),
		stopCh:      make(chan struct{}),
	}
}

// Start starts the watch scan worker
func (w *WatchScanWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watch scan worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.log.Info(fmt.Sprintf("Starting watch scan worker (interval: %s)", w.config.ScanInterval))

	w.wg.Add(1)
	go w.loop(ctx)

	return nil
}

// Stop stops the watch scan worker
func (w *WatchScanWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	w.log.Info("Stopping watch scan worker")
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("Watch scan worker stopped")
}

// loop runs scans on the configured interval until stopped
func (w *WatchScanWorker) loop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.ScanInterval)
	defer ticker.Stop()

	// Run immediately on start
	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

// scan runs one watchlist scan; errors are logged and the next tick retries
func (w *WatchScanWorker) scan(ctx context.Context) {
	w.lastScanTime = time.Now()

	created, err := w.scanService.Scan(ctx)
	if err != nil {
		w.log.Error(fmt.Sprintf("Watchlist scan failed: %v", err))
		return
	}
	w.totalCreated += int64(created)

	if created > 0 {
		w.log.Info(fmt.Sprintf("Watchlist scan created %d notifications", created))
	}
}
