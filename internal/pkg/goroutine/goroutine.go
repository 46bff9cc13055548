// Package goroutine runs background tasks with a concurrency limit and waits
// for them on shutdown.
package goroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/formbite/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 100

// ErrManagerClosed is recorded when Go is called after Wait.
var ErrManagerClosed = errors.New("goroutine: manager is closed")

// ErrLimitReached is recorded when Go is called with every slot busy.
var ErrLimitReached = errors.New("goroutine: maximum goroutine limit reached")

// Manager runs functions in goroutines with a configurable concurrency limit.
//
// Errors returned by tasks, panics and rejected tasks are collected and
// returned by Wait.
type Manager struct {
	mu      sync.Mutex
	errs    []error
	wg      sync.WaitGroup
	sema    chan struct{}
	stateMu sync.RWMutex
	closed  bool
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go runs f in a goroutine if a slot is free. name labels logs and errors.
//
// Go never blocks: when the manager is closed or full the task is dropped and
// the rejection is recorded.
func (g *Manager) Go(ctx context.Context, name string, f func(ctx context.Context) error) {
	if g == nil {
		return
	}

	g.stateMu.RLock()
	defer g.stateMu.RUnlock()

	if g.closed {
		slog.WarnContext(ctx, "goroutine manager is closed, skipping new goroutine", "task", name)
		g.record(fmt.Errorf("%s: %w", name, ErrManagerClosed))
		return
	}

	select {
	case g.sema <- struct{}{}:
	default:
		slog.WarnContext(ctx, "maximum goroutine limit reached, failed to start new goroutine", "task", name)
		g.record(fmt.Errorf("%s: %w", name, ErrLimitReached))
		return
	}

	g.wg.Go(func() {
		defer func() {
			<-g.sema

			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "task", name, "because", rvr, "stack", paths)
				} else {
					slog.ErrorContext(ctx, "panic occurred in goroutine", "task", name, "because", rvr, "stack", string(stack))
				}
				g.record(fmt.Errorf("%s: panic: %v", name, rvr))
			}
		}()

		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "goroutine canceled before start", "task", name, "because", err)
			return
		}

		if err := f(ctx); err != nil {
			g.record(fmt.Errorf("%s: %w", name, err))
		}
	})
}

func (g *Manager) record(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait closes the manager, blocks until all running goroutines finish and
// returns the collected errors.
func (g *Manager) Wait() error {
	if g == nil {
		return nil
	}

	g.stateMu.Lock()
	g.closed = true
	g.stateMu.Unlock()

	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
