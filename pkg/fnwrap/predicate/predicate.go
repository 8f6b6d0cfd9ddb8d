package predicate

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const kind = "Predicate"

// Predicate wraps a func(T) bool with a name and an identity.
// Copies share the callable and the identity.
type Predicate[T any] struct {
	meta fnwrap.Meta
	fn   func(T) bool
}

func New[T any](fn func(T) bool, opts ...fnwrap.Option) Predicate[T] {
	fnwrap.MustCallable(kind, fn)
	o := fnwrap.NewOptions(opts...)
	return Predicate[T]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func Named[T any](name string, fn func(T) bool) Predicate[T] {
	return New(fn, fnwrap.WithName(name))
}

// From wraps any Tester. A Predicate is returned unchanged.
func From[T any](t fnwrap.Tester[T]) Predicate[T] {
	if p, ok := t.(Predicate[T]); ok {
		return p
	}
	fnwrap.MustCallable(kind, t)
	return Predicate[T]{meta: fnwrap.MetaOf(t), fn: t.Test}
}

func composite[T any](op string, fn func(T) bool, parts ...fnwrap.Meta) Predicate[T] {
	return Predicate[T]{meta: fnwrap.Composite(op, parts...), fn: fn}
}

func AlwaysTrue[T any]() Predicate[T] {
	return Named("always_true", func(T) bool { return true })
}

func AlwaysFalse[T any]() Predicate[T] {
	return Named("always_false", func(T) bool { return false })
}

// Equal tests for equality with v.
func Equal[T comparable](v T) Predicate[T] {
	return Named("equal", func(in T) bool { return in == v })
}

func (p Predicate[T]) Test(v T) bool {
	return p.fn(v)
}

func (p Predicate[T]) And(other fnwrap.Tester[T]) Predicate[T] {
	return composite(op2And, func(v T) bool { return p.fn(v) && other.Test(v) },
		p.meta, fnwrap.MetaOf(other))
}

func (p Predicate[T]) Or(other fnwrap.Tester[T]) Predicate[T] {
	return composite(op2Or, func(v T) bool { return p.fn(v) || other.Test(v) },
		p.meta, fnwrap.MetaOf(other))
}

func (p Predicate[T]) Xor(other fnwrap.Tester[T]) Predicate[T] {
	return composite(op2Xor, func(v T) bool { return p.fn(v) != other.Test(v) },
		p.meta, fnwrap.MetaOf(other))
}

func (p Predicate[T]) Nand(other fnwrap.Tester[T]) Predicate[T] {
	return composite(op2Nand, func(v T) bool { return !(p.fn(v) && other.Test(v)) },
		p.meta, fnwrap.MetaOf(other))
}

func (p Predicate[T]) Nor(other fnwrap.Tester[T]) Predicate[T] {
	return composite(op2Nor, func(v T) bool { return !(p.fn(v) || other.Test(v)) },
		p.meta, fnwrap.MetaOf(other))
}

func (p Predicate[T]) Not() Predicate[T] {
	return composite(opNot, func(v T) bool { return !p.fn(v) }, p.meta)
}

// All holds when every tester holds. Evaluation stops at the first failure.
// With no testers it always holds.
func All[T any](ts ...fnwrap.Tester[T]) Predicate[T] {
	return composite("all", func(v T) bool {
		return lo.EveryBy(ts, func(t fnwrap.Tester[T]) bool { return t.Test(v) })
	}, metas(ts)...)
}

// Any holds when at least one tester holds. Evaluation stops at the first
// success. With no testers it never holds.
func Any[T any](ts ...fnwrap.Tester[T]) Predicate[T] {
	return composite("any", func(v T) bool {
		return lo.SomeBy(ts, func(t fnwrap.Tester[T]) bool { return t.Test(v) })
	}, metas(ts)...)
}

// None holds when no tester holds.
func None[T any](ts ...fnwrap.Tester[T]) Predicate[T] {
	return composite("none", func(v T) bool {
		return lo.NoneBy(ts, func(t fnwrap.Tester[T]) bool { return t.Test(v) })
	}, metas(ts)...)
}

func metas[T any](ts []fnwrap.Tester[T]) []fnwrap.Meta {
	return lo.Map(ts, func(t fnwrap.Tester[T], _ int) fnwrap.Meta { return fnwrap.MetaOf(t) })
}

func (p Predicate[T]) Meta() fnwrap.Meta {
	return p.meta
}

func (p Predicate[T]) Name() mo.Option[string] {
	return p.meta.Name()
}

// WithName returns a copy carrying name.
func (p Predicate[T]) WithName(name string) Predicate[T] {
	p.meta = p.meta.WithName(name)
	return p
}

func (p Predicate[T]) String() string {
	return p.meta.Describe(kind)
}

// ToFunc unwraps the callable.
func (p Predicate[T]) ToFunc() Func[T] {
	return p.fn
}

const (
	op2And  = "and"
	op2Or   = "or"
	op2Xor  = "xor"
	op2Nand = "nand"
	op2Nor  = "nor"
	opNot   = "not"
)
