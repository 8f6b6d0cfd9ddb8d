package comparator

import (
	"cmp"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/ib-77/fnwrap/pkg/fnwrap/predicate"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const kind = "Comparator"

type Comparator[T any] struct {
	meta fnwrap.Meta
	fn   func(a, b T) int
}

func New[T any](fn func(a, b T) int, opts ...fnwrap.Option) Comparator[T] {
	fnwrap.MustCallable(kind, fn)
	o := fnwrap.NewOptions(opts...)
	return Comparator[T]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func Named[T any](name string, fn func(a, b T) int) Comparator[T] {
	return New(fn, fnwrap.WithName(name))
}

// From wraps any Ordering. A Comparator is returned unchanged.
func From[T any](o fnwrap.Ordering[T]) Comparator[T] {
	if c, ok := o.(Comparator[T]); ok {
		return c
	}
	fnwrap.MustCallable(kind, o)
	return Comparator[T]{meta: fnwrap.MetaOf(o), fn: o.Compare}
}

// Natural orders values by cmp.Compare.
func Natural[T cmp.Ordered]() Comparator[T] {
	return Named("natural", cmp.Compare[T])
}

// Comparing orders values by the key extracted from them.
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	fnwrap.MustCallable(kind, key)
	return New(func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// Chain breaks ties in order: the first non-zero result wins. An empty
// chain treats everything as equal.
func Chain[T any](cs ...fnwrap.Ordering[T]) Comparator[T] {
	metas := lo.Map(cs, func(o fnwrap.Ordering[T], _ int) fnwrap.Meta { return fnwrap.MetaOf(o) })
	fn := lo.Reduce(cs, func(acc func(a, b T) int, o fnwrap.Ordering[T], _ int) func(a, b T) int {
		return thenBy(acc, o.Compare)
	}, func(T, T) int { return 0 })
	return Comparator[T]{meta: fnwrap.Composite("chain", metas...), fn: fn}
}

func thenBy[T any](first, second func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		if r := first(a, b); r != 0 {
			return r
		}
		return second(a, b)
	}
}

func (c Comparator[T]) Compare(a, b T) int {
	return c.fn(a, b)
}

func (c Comparator[T]) Reversed() Comparator[T] {
	return Comparator[T]{
		meta: fnwrap.Composite("reversed", c.meta),
		fn:   func(a, b T) int { return c.fn(b, a) },
	}
}

// ThenComparing consults next only when c reports a tie.
func (c Comparator[T]) ThenComparing(next fnwrap.Ordering[T]) Comparator[T] {
	return Comparator[T]{
		meta: fnwrap.Composite("then_comparing", c.meta, fnwrap.MetaOf(next)),
		fn:   thenBy(c.fn, next.Compare),
	}
}

// Min returns the lesser of a and b, a on a tie.
func (c Comparator[T]) Min(a, b T) T {
	if c.fn(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the greater of a and b, a on a tie.
func (c Comparator[T]) Max(a, b T) T {
	if c.fn(b, a) > 0 {
		return b
	}
	return a
}

// Less is the strict ordering of c as a BiPredicate.
func (c Comparator[T]) Less() predicate.BiPredicate[T, T] {
	return predicate.NewBi(func(a, b T) bool { return c.fn(a, b) < 0 })
}

func (c Comparator[T]) When(p fnwrap.BiTester[T, T]) Conditional[T] {
	return Conditional[T]{
		meta:    fnwrap.Composite("when", c.meta, fnwrap.MetaOf(p)),
		primary: c.fn,
		test:    p,
	}
}

func (c Comparator[T]) Meta() fnwrap.Meta {
	return c.meta
}

func (c Comparator[T]) Name() mo.Option[string] {
	return c.meta.Name()
}

func (c Comparator[T]) WithName(name string) Comparator[T] {
	c.meta = c.meta.WithName(name)
	return c
}

func (c Comparator[T]) String() string {
	return c.meta.Describe(kind)
}

// ToFunc returns the bare ordering, ready for slices.SortFunc.
func (c Comparator[T]) ToFunc() Func[T] {
	return c.fn
}

type Conditional[T any] struct {
	meta    fnwrap.Meta
	primary func(a, b T) int
	test    fnwrap.BiTester[T, T]
}

// OrElse completes the conditional: pairs that pass the test are ordered by
// the primary, the rest by fallback.
func (c Conditional[T]) OrElse(fallback fnwrap.Ordering[T]) Comparator[T] {
	return Comparator[T]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   core.Untuple(core.Branch(core.Tuple(c.test.Test), core.Tuple(c.primary), core.Tuple(fallback.Compare))),
	}
}

// Func is the bare-closure adapter for Comparator.
type Func[T any] func(a, b T) int

func Of[T any](fn func(a, b T) int) Func[T] {
	return fn
}

func (f Func[T]) Compare(a, b T) int {
	return f(a, b)
}

func (f Func[T]) Reversed() Comparator[T] {
	return New(f).Reversed()
}

func (f Func[T]) ThenComparing(next fnwrap.Ordering[T]) Comparator[T] {
	return New(f).ThenComparing(next)
}

func (f Func[T]) When(p fnwrap.BiTester[T, T]) Conditional[T] {
	return New(f).When(p)
}

func (f Func[T]) ToComparator(opts ...fnwrap.Option) Comparator[T] {
	return New(f, opts...)
}
