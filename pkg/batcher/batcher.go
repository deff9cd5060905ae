// Package batcher buffers items in a background loop and hands them to a
// callback in batches, bounded by size, interval and a rate limit.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultFlushSize     = 1000
	defaultFlushInterval = time.Second
)

// Config controls when a batch is handed to the callback. Zero values pick
// defaults; a non-positive RPS disables rate limiting.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// FlushFunc receives a batch. The slice is reused after the call returns.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Batcher buffers items and flushes them by size, by interval, or on demand.
type Batcher[T any] struct {
	flush         FlushFunc[T]
	itemsCh       chan T
	flushReq      chan chan error
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Call Start before Add.
func New[T any](cfg Config, flush FlushFunc[T], logger *zap.Logger) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}

	return &Batcher[T]{
		flush:         flush,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		flushReq:      make(chan chan error),
		flushSize:     cfg.FlushSize,
		flushInterval: cfg.FlushInterval,
		rl:            rl,
		logger:        logger,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. Safe to call
// more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

// Flush hands every item queued so far to the callback. It returns the first
// error seen since the previous Flush, including failures of batches flushed
// in the background by size or interval.
func (b *Batcher[T]) Flush(ctx context.Context) error {
	done := make(chan error, 1)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.flushReq <- done:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)
	// First failure of a size or interval flush, reported by the next drain.
	var pendingErr error

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}

		b.rl.Take()
		err := b.flush(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
		return err
	}

	drain := func() error {
		firstErr := pendingErr
		pendingErr = nil
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					if err := flush(); err != nil && firstErr == nil {
						firstErr = err
					}
				}
			default:
				if err := flush(); err != nil && firstErr == nil {
					firstErr = err
				}
				return firstErr
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			_ = drain()
			return

		case <-b.stop:
			_ = drain()
			return

		case done := <-b.flushReq:
			done <- drain()

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				if err := flush(); err != nil && pendingErr == nil {
					pendingErr = err
				}
			}

		case <-ticker.C:
			if err := flush(); err != nil && pendingErr == nil {
				pendingErr = err
			}
		}
	}
}
