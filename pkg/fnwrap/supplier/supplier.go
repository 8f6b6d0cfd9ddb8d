package supplier

import (
	"sync"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const kind = "Supplier"

// Supplier wraps a func() T. Copies share the callable.
type Supplier[T any] struct {
	meta fnwrap.Meta
	fn   func() T
}

func New[T any](fn func() T, opts ...fnwrap.Option) Supplier[T] {
	fnwrap.MustCallable(kind, fn)
	o := fnwrap.NewOptions(opts...)
	return Supplier[T]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func Named[T any](name string, fn func() T) Supplier[T] {
	return New(fn, fnwrap.WithName(name))
}

// From wraps any Provider. A Supplier is returned unchanged.
func From[T any](p fnwrap.Provider[T]) Supplier[T] {
	if s, ok := p.(Supplier[T]); ok {
		return s
	}
	fnwrap.MustCallable(kind, p)
	return Supplier[T]{meta: fnwrap.MetaOf(p), fn: p.Get}
}

func Constant[T any](v T) Supplier[T] {
	return Named("constant", func() T { return v })
}

// Map returns a Supplier that passes every value s produces through f.
func Map[T, R any](s fnwrap.Provider[T], f fnwrap.Applier[T, R]) Supplier[R] {
	return Supplier[R]{
		meta: fnwrap.Composite("map", fnwrap.MetaOf(s), fnwrap.MetaOf(f)),
		fn:   func() R { return f.Apply(s.Get()) },
	}
}

// Memoize calls s at most once, on the first Get, and returns that value
// from then on. Safe for concurrent use. A panic in s is re-raised on every
// Get.
func Memoize[T any](s fnwrap.Provider[T]) Supplier[T] {
	return Supplier[T]{
		meta: fnwrap.Composite("memoize", fnwrap.MetaOf(s)),
		fn:   sync.OnceValue(s.Get),
	}
}

func (s Supplier[T]) Get() T {
	return s.fn()
}

// Map is the same-type form of the package Map.
func (s Supplier[T]) Map(f fnwrap.Applier[T, T]) Supplier[T] {
	return Map[T, T](s, f)
}

func (s Supplier[T]) When(p fnwrap.Tester[T]) Conditional[T] {
	return Conditional[T]{
		meta:    fnwrap.Composite("when", s.meta, fnwrap.MetaOf(p)),
		primary: s.fn,
		test:    p,
	}
}

func (s Supplier[T]) Meta() fnwrap.Meta {
	return s.meta
}

func (s Supplier[T]) Name() mo.Option[string] {
	return s.meta.Name()
}

func (s Supplier[T]) WithName(name string) Supplier[T] {
	s.meta = s.meta.WithName(name)
	return s
}

func (s Supplier[T]) String() string {
	return s.meta.Describe(kind)
}

func (s Supplier[T]) ToFunc() Func[T] {
	return s.fn
}

func (s Supplier[T]) ToOnce() Once[T] {
	return newOnce(s.fn, s.meta, fnwrap.NewOptions())
}

func (s Supplier[T]) ToSync(opts ...fnwrap.Option) Sync[T] {
	if name, ok := s.meta.Name().Get(); ok {
		opts = append([]fnwrap.Option{fnwrap.WithName(name)}, opts...)
	}
	return NewSync(s.fn, opts...)
}

type Conditional[T any] struct {
	meta    fnwrap.Meta
	primary func() T
	test    fnwrap.Tester[T]
}

// OrElse completes the conditional. The primary always runs; fallback runs
// only when the primary's value fails the test.
func (c Conditional[T]) OrElse(fallback fnwrap.Provider[T]) Supplier[T] {
	return Supplier[T]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   choose(c.primary, c.test.Test, fallback.Get),
	}
}

func choose[T any](primary func() T, test func(T) bool, fallback func() T) func() T {
	keep := core.Branch(test, func(t T) T { return t }, func(T) T { return fallback() })
	return func() T {
		return keep(primary())
	}
}

// Func is the bare-closure adapter for Supplier.
type Func[T any] func() T

func Of[T any](fn func() T) Func[T] {
	return fn
}

func (f Func[T]) Get() T {
	return f()
}

func (f Func[T]) Map(g fnwrap.Applier[T, T]) Supplier[T] {
	return New(f).Map(g)
}

func (f Func[T]) When(p fnwrap.Tester[T]) Conditional[T] {
	return New(f).When(p)
}

func (f Func[T]) ToSupplier(opts ...fnwrap.Option) Supplier[T] {
	return New(f, opts...)
}
