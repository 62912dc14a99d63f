package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CatalogFacade exposes the subset of application functionality required
// by the worker.
type CatalogFacade interface {
	RefreshFeaturedCatalog(ctx context.Context) error
}

// CacheRefresher re-primes the featured-products cache on a timer so
// the listing survives cache eviction and invalidation between reads.
type CacheRefresher struct {
	facade   CatalogFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCacheRefresher constructs the refresher.
func NewCacheRefresher(facade CatalogFacade, interval time.Duration, logger *slog.Logger) *CacheRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheRefresher{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start primes the cache once and launches the background loop.
func (r *CacheRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.refresh(runCtx)

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the loop to finish.
func (r *CacheRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *CacheRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *CacheRefresher) refresh(ctx context.Context) {
	if err := r.facade.RefreshFeaturedCatalog(ctx); err != nil {
		r.logger.Error("featured catalog refresh failed", slog.String("error", err.Error()))
	}
}
