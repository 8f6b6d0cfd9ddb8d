package mutator

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const kind = "Mutator"

// Mutator wraps a func(*T). A nil pointer is handed to the callable as is.
type Mutator[T any] struct {
	meta fnwrap.Meta
	fn   func(*T)
}

func New[T any](fn func(*T), opts ...fnwrap.Option) Mutator[T] {
	fnwrap.MustCallable(kind, fn)
	o := fnwrap.NewOptions(opts...)
	return Mutator[T]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func Named[T any](name string, fn func(*T)) Mutator[T] {
	return New(fn, fnwrap.WithName(name))
}

// From wraps any Mutable. A Mutator is returned unchanged.
func From[T any](m fnwrap.Mutable[T]) Mutator[T] {
	if w, ok := m.(Mutator[T]); ok {
		return w
	}
	fnwrap.MustCallable(kind, m)
	return Mutator[T]{meta: fnwrap.MetaOf(m), fn: m.Mutate}
}

// Set returns a Mutator that overwrites the target with v.
func Set[T any](v T) Mutator[T] {
	return Named("set", func(t *T) { *t = v })
}

func (m Mutator[T]) Mutate(t *T) {
	m.fn(t)
}

// Apply mutates a copy of t and returns it, leaving t untouched.
func (m Mutator[T]) Apply(t T) T {
	m.fn(&t)
	return t
}

// AndThen mutates with m, then with next, on the same pointer.
func (m Mutator[T]) AndThen(next fnwrap.Mutable[T]) Mutator[T] {
	return Mutator[T]{
		meta: fnwrap.Composite("and_then", m.meta, fnwrap.MetaOf(next)),
		fn:   core.Seq(m.fn, next.Mutate),
	}
}

func (m Mutator[T]) When(p fnwrap.Tester[T]) Conditional[T] {
	return Conditional[T]{
		meta:    fnwrap.Composite("when", m.meta, fnwrap.MetaOf(p)),
		primary: m.fn,
		test:    p,
	}
}

func (m Mutator[T]) Meta() fnwrap.Meta {
	return m.meta
}

func (m Mutator[T]) Name() mo.Option[string] {
	return m.meta.Name()
}

func (m Mutator[T]) WithName(name string) Mutator[T] {
	m.meta = m.meta.WithName(name)
	return m
}

func (m Mutator[T]) String() string {
	return m.meta.Describe(kind)
}

func (m Mutator[T]) ToFunc() Func[T] {
	return m.fn
}

func (m Mutator[T]) ToOnce() Once[T] {
	return newOnce(m.fn, m.meta, fnwrap.NewOptions())
}

func (m Mutator[T]) ToSync(opts ...fnwrap.Option) Sync[T] {
	if name, ok := m.meta.Name().Get(); ok {
		opts = append([]fnwrap.Option{fnwrap.WithName(name)}, opts...)
	}
	return NewSync(m.fn, opts...)
}

type Conditional[T any] struct {
	meta    fnwrap.Meta
	primary func(*T)
	test    fnwrap.Tester[T]
}

func (c Conditional[T]) OrElse(fallback fnwrap.Mutable[T]) Mutator[T] {
	return Mutator[T]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   branch(c.test.Test, c.primary, fallback.Mutate),
	}
}

// byValue lets a predicate on T decide for a *T. A nil pointer tests as the
// zero value.
func byValue[T any](test func(T) bool) func(*T) bool {
	return func(t *T) bool {
		if t == nil {
			var zero T
			return test(zero)
		}
		return test(*t)
	}
}

func branch[T any](test func(T) bool, then, otherwise func(*T)) func(*T) {
	return core.Discard(core.Branch(byValue(test), core.Effect(then), core.Effect(otherwise)))
}

// Func is the bare-closure adapter for Mutator.
type Func[T any] func(*T)

func Of[T any](fn func(*T)) Func[T] {
	return fn
}

func (f Func[T]) Mutate(t *T) {
	f(t)
}

func (f Func[T]) AndThen(next fnwrap.Mutable[T]) Mutator[T] {
	return New(f).AndThen(next)
}

func (f Func[T]) When(p fnwrap.Tester[T]) Conditional[T] {
	return New(f).When(p)
}

func (f Func[T]) ToMutator(opts ...fnwrap.Option) Mutator[T] {
	return New(f, opts...)
}
