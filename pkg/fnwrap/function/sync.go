package function

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const syncKind = "FunctionSync"

// Sync wraps a stateful callable shared between goroutines. Every call runs
// under the wrapper's lock, so calls through any copy are serialized.
//
// Callables handed to a Sync should neither block for long nor panic: a
// panic poisons the wrapper (see core.Guard) and every later call fails
// with *fnwrap.PoisonedError until ClearPoison.
type Sync[T, R any] struct {
	meta   fnwrap.Meta
	run    func(T) mo.Result[R]
	guards []*core.Guard
}

func NewSync[T, R any](fn func(T) R, opts ...fnwrap.Option) Sync[T, R] {
	fnwrap.MustCallable(syncKind, fn)
	o := fnwrap.NewOptions(opts...)
	meta := fnwrap.NewMeta(o.Name)
	g := core.NewGuard(syncKind, o)

	return Sync[T, R]{
		meta: meta,
		run: func(t T) mo.Result[R] {
			var out R
			if err := g.Do(meta.Token(), func() { out = fn(t) }); err != nil {
				return mo.Err[R](err)
			}
			return mo.Ok(out)
		},
		guards: []*core.Guard{g},
	}
}

// Apply runs the callable under the lock. Panics with *fnwrap.PoisonedError
// if a previous call panicked.
func (s Sync[T, R]) Apply(t T) R {
	return s.run(t).MustGet()
}

// TryApply is Apply returning the poisoned error instead of panicking.
// Panics raised by the callable itself still propagate.
func (s Sync[T, R]) TryApply(t T) (R, error) {
	return s.run(t).Get()
}

func (s Sync[T, R]) Poisoned() bool {
	return core.AnyPoisoned(s.guards)
}

// ClearPoison makes the wrapper usable again after a panic. The state held
// by the callable is left as the panic left it.
func (s Sync[T, R]) ClearPoison() {
	core.ClearAll(s.guards)
}

// runOf returns the error-aware body of a and the guards it locks.
func runOf[T, R any](a fnwrap.Applier[T, R]) (func(T) mo.Result[R], []*core.Guard) {
	if s, ok := a.(Sync[T, R]); ok {
		return s.run, s.guards
	}
	return func(t T) mo.Result[R] { return mo.Ok(a.Apply(t)) }, nil
}

// SyncAndThen returns a Sync that runs first and feeds its output to second.
// The composite holds no lock of its own: each step locks its own guard,
// so a Sync chained with itself cannot deadlock.
func SyncAndThen[T, R, V any](first Sync[T, R], second fnwrap.Applier[R, V]) Sync[T, V] {
	next, guards := runOf(second)
	return Sync[T, V]{
		meta: fnwrap.Composite("and_then", first.meta, fnwrap.MetaOf(second)),
		run: func(t T) mo.Result[V] {
			r, err := first.run(t).Get()
			if err != nil {
				return mo.Err[V](err)
			}
			return next(r)
		},
		guards: core.Guards(first.guards, guards),
	}
}

func (s Sync[T, R]) AndThen(next fnwrap.Applier[R, R]) Sync[T, R] {
	return SyncAndThen(s, next)
}

func (s Sync[T, R]) When(p fnwrap.Tester[T]) SyncConditional[T, R] {
	return SyncConditional[T, R]{
		meta:    fnwrap.Composite("when", s.meta, fnwrap.MetaOf(p)),
		primary: s,
		test:    p,
	}
}

func (s Sync[T, R]) Meta() fnwrap.Meta {
	return s.meta
}

func (s Sync[T, R]) Name() mo.Option[string] {
	return s.meta.Name()
}

// WithName returns a handle carrying name that shares s's lock and state.
func (s Sync[T, R]) WithName(name string) Sync[T, R] {
	s.meta = s.meta.WithName(name)
	return s
}

func (s Sync[T, R]) String() string {
	return s.meta.Describe(syncKind)
}

type SyncConditional[T, R any] struct {
	meta    fnwrap.Meta
	primary Sync[T, R]
	test    fnwrap.Tester[T]
}

// OrElse completes the conditional. The predicate runs outside any lock.
func (c SyncConditional[T, R]) OrElse(fallback fnwrap.Applier[T, R]) Sync[T, R] {
	other, guards := runOf(fallback)
	return Sync[T, R]{
		meta:   fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		run:    core.Branch(c.test.Test, c.primary.run, other),
		guards: core.Guards(c.primary.guards, guards),
	}
}
