package supplier

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const syncKind = "SupplierSync"

// Sync serializes calls to a stateful producer, such as a counter or an id
// generator shared between goroutines.
type Sync[T any] struct {
	meta   fnwrap.Meta
	run    func() mo.Result[T]
	guards []*core.Guard
}

func NewSync[T any](fn func() T, opts ...fnwrap.Option) Sync[T] {
	fnwrap.MustCallable(syncKind, fn)
	o := fnwrap.NewOptions(opts...)
	meta := fnwrap.NewMeta(o.Name)
	g := core.NewGuard(syncKind, o)

	return Sync[T]{
		meta: meta,
		run: func() mo.Result[T] {
			var out T
			if err := g.Do(meta.Token(), func() { out = fn() }); err != nil {
				return mo.Err[T](err)
			}
			return mo.Ok(out)
		},
		guards: []*core.Guard{g},
	}
}

// Counter returns a Sync producing start, start+1, start+2, ...
func Counter(start int) Sync[int] {
	next := start
	return NewSync(func() int {
		n := next
		next++
		return n
	}, fnwrap.WithName("counter"))
}

func (s Sync[T]) Get() T {
	return s.run().MustGet()
}

func (s Sync[T]) TryGet() (T, error) {
	return s.run().Get()
}

func (s Sync[T]) Poisoned() bool {
	return core.AnyPoisoned(s.guards)
}

func (s Sync[T]) ClearPoison() {
	core.ClearAll(s.guards)
}

func runOf[T any](p fnwrap.Provider[T]) (func() mo.Result[T], []*core.Guard) {
	if s, ok := p.(Sync[T]); ok {
		return s.run, s.guards
	}
	return func() mo.Result[T] { return mo.Ok(p.Get()) }, nil
}

// SyncMap returns a Sync whose values are passed through f. f runs outside
// s's lock.
func SyncMap[T, R any](s Sync[T], f fnwrap.Applier[T, R]) Sync[R] {
	return Sync[R]{
		meta: fnwrap.Composite("map", s.meta, fnwrap.MetaOf(f)),
		run: func() mo.Result[R] {
			v, err := s.run().Get()
			if err != nil {
				return mo.Err[R](err)
			}
			return mo.Ok(f.Apply(v))
		},
		guards: s.guards,
	}
}

func (s Sync[T]) Map(f fnwrap.Applier[T, T]) Sync[T] {
	return SyncMap(s, f)
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

func (c SyncConditional[T]) OrElse(fallback fnwrap.Provider[T]) Sync[T] {
	other, guards := runOf(fallback)
	primary := c.primary.run
	return Sync[T]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		run: func() mo.Result[T] {
			v, err := primary().Get()
			if err != nil {
				return mo.Err[T](err)
			}
			if c.test.Test(v) {
				return mo.Ok(v)
			}
			return other()
		},
		guards: core.Guards(c.primary.guards, guards),
	}
}
