package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type refreshFacadeStub struct {
	calls int32
	err   error
}

func (s *refreshFacadeStub) RefreshFeaturedCatalog(ctx context.Context) error {
	atomic.AddInt32(&s.calls, 1)
	return s.err
}

func (s *refreshFacadeStub) count() int32 {
	return atomic.LoadInt32(&s.calls)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewCacheRefresherDefaults(t *testing.T) {
	r := NewCacheRefresher(&refreshFacadeStub{}, 0, discardLogger())
	if r.interval != time.Minute {
		t.Fatalf("expected interval default to one minute, got %v", r.interval)
	}
}

func TestCacheRefresherPrimesOnStart(t *testing.T) {
	facade := &refreshFacadeStub{}
	r := NewCacheRefresher(facade, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop()

	if facade.count() != 1 {
		t.Fatalf("expected one immediate refresh, got %d", facade.count())
	}
}

func TestCacheRefresherRunsOnTicker(t *testing.T) {
	facade := &refreshFacadeStub{}
	r := NewCacheRefresher(facade, 10*time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for facade.count() < 3 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for periodic refreshes")
		case <-time.After(10 * time.Millisecond):
		}
	}

	r.Stop()
	after := facade.count()
	time.Sleep(30 * time.Millisecond)
	if facade.count() != after {
		t.Fatal("expected no refreshes after Stop")
	}
}

func TestCacheRefresherKeepsRunningOnError(t *testing.T) {
	facade := &refreshFacadeStub{err: errors.New("redis down")}
	r := NewCacheRefresher(facade, 10*time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	defer r.Stop()

	deadline := time.After(500 * time.Millisecond)
	for facade.count() < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry after failure")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
