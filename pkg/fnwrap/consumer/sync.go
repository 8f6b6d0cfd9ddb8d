package consumer

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const syncKind = "ConsumerSync"

// Sync is a Consumer whose calls are serialized by a lock, for callables
// that accumulate state and are shared between goroutines.
type Sync[T any] struct {
	meta   fnwrap.Meta
	run    func(T) error
	guards []*core.Guard
}

func NewSync[T any](fn func(T), opts ...fnwrap.Option) Sync[T] {
	fnwrap.MustCallable(syncKind, fn)
	o := fnwrap.NewOptions(opts...)
	meta := fnwrap.NewMeta(o.Name)
	g := core.NewGuard(syncKind, o)

	return Sync[T]{
		meta: meta,
		run: func(t T) error {
			return g.Do(meta.Token(), func() { fn(t) })
		},
		guards: []*core.Guard{g},
	}
}

// Accept runs the callable under the lock; panics with
// *fnwrap.PoisonedError once poisoned.
func (s Sync[T]) Accept(t T) {
	if err := s.run(t); err != nil {
		panic(err)
	}
}

func (s Sync[T]) TryAccept(t T) error {
	return s.run(t)
}

func (s Sync[T]) Poisoned() bool {
	return core.AnyPoisoned(s.guards)
}

func (s Sync[T]) ClearPoison() {
	core.ClearAll(s.guards)
}

func runOf[T any](a fnwrap.Acceptor[T]) (func(T) error, []*core.Guard) {
	if s, ok := a.(Sync[T]); ok {
		return s.run, s.guards
	}
	return func(t T) error {
		a.Accept(t)
		return nil
	}, nil
}

// AndThen runs s and then next on the same input. Each step takes its own
// lock; the pair is not atomic with respect to other callers.
func (s Sync[T]) AndThen(next fnwrap.Acceptor[T]) Sync[T] {
	second, guards := runOf(next)
	return Sync[T]{
		meta: fnwrap.Composite("and_then", s.meta, fnwrap.MetaOf(next)),
		run: func(t T) error {
			if err := s.run(t); err != nil {
				return err
			}
			return second(t)
		},
		guards: core.Guards(s.guards, guards),
	}
}

func (s Sync[T]) When(p fnwrap.Tester[T]) SyncConditional[T] {
	return SyncConditional[T]{
		meta:    fnwrap.Composite("when", s.meta, fnwrap.MetaOf(p)),
		primary: s,
		test:    p,
	}
}

func (s Sync[T]) Meta() fnwrap.Meta {
	return s.meta
}

func (s Sync[T]) Name() mo.Option[string] {
	return s.meta.Name()
}

func (s Sync[T]) WithName(name string) Sync[T] {
	s.meta = s.meta.WithName(name)
	return s
}

func (s Sync[T]) String() string {
	return s.meta.Describe(syncKind)
}

type SyncConditional[T any] struct {
	meta    fnwrap.Meta
	primary Sync[T]
	test    fnwrap.Tester[T]
}

func (c SyncConditional[T]) OrElse(fallback fnwrap.Acceptor[T]) Sync[T] {
	other, guards := runOf(fallback)
	return Sync[T]{
		meta:   fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		run:    core.Branch(c.test.Test, c.primary.run, other),
		guards: core.Guards(c.primary.guards, guards),
	}
}
