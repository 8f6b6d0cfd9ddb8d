package core

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
)

// Guard serializes calls to a stateful callable shared between goroutines.
//
// The lock is held for exactly one call. If the callable panics, the guard
// is poisoned before the lock is released and the panic continues
// unchanged; later calls fail with *fnwrap.PoisonedError until Clear.
// There is no fairness: waiting callers acquire the lock in whatever order
// sync.Mutex grants it.
type Guard struct {
	mu     sync.Mutex
	poison atomic.Pointer[fnwrap.PoisonedError]
	kind   string
	opts   fnwrap.Options
}

func NewGuard(kind string, opts fnwrap.Options) *Guard {
	return &Guard{kind: kind, opts: opts}
}

// Do runs f under the lock. who names the wrapper in errors and logs.
func (g *Guard) Do(who string, f func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if perr := g.poison.Load(); perr != nil {
		return perr
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		g.poison.Store(&fnwrap.PoisonedError{Kind: g.kind, Name: who, Value: r})
		g.opts.Log().Warn("callable panicked while holding lock",
			slog.String("kind", g.kind),
			slog.String("wrapper", who),
			slog.Any("panic", r))
		if g.opts.Recorder != nil {
			g.opts.Recorder.RecordPoison(who)
		}
		panic(r)
	}()

	f()
	return nil
}

func (g *Guard) Poisoned() bool {
	return g.poison.Load() != nil
}

// Clear lifts the poison. The callable's own state is not reset.
func (g *Guard) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poison.Swap(nil) != nil {
		g.opts.Log().Info("poison cleared", slog.String("kind", g.kind))
	}
}
