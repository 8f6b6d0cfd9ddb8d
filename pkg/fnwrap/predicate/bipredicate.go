package predicate

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/samber/mo"
)

const biKind = "BiPredicate"

// BiPredicate is the two-input form of Predicate.
type BiPredicate[T, U any] struct {
	meta fnwrap.Meta
	fn   func(T, U) bool
}

func NewBi[T, U any](fn func(T, U) bool, opts ...fnwrap.Option) BiPredicate[T, U] {
	fnwrap.MustCallable(biKind, fn)
	o := fnwrap.NewOptions(opts...)
	return BiPredicate[T, U]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func NamedBi[T, U any](name string, fn func(T, U) bool) BiPredicate[T, U] {
	return NewBi(fn, fnwrap.WithName(name))
}

// FromBi wraps any BiTester. A BiPredicate is returned unchanged.
func FromBi[T, U any](t fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	if p, ok := t.(BiPredicate[T, U]); ok {
		return p
	}
	fnwrap.MustCallable(biKind, t)
	return BiPredicate[T, U]{meta: fnwrap.MetaOf(t), fn: t.Test}
}

func biComposite[T, U any](op string, fn func(T, U) bool, parts ...fnwrap.Meta) BiPredicate[T, U] {
	return BiPredicate[T, U]{meta: fnwrap.Composite(op, parts...), fn: fn}
}

func (p BiPredicate[T, U]) Test(t T, u U) bool {
	return p.fn(t, u)
}

func (p BiPredicate[T, U]) And(other fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	return biComposite(op2And, func(t T, u U) bool { return p.fn(t, u) && other.Test(t, u) },
		p.meta, fnwrap.MetaOf(other))
}

func (p BiPredicate[T, U]) Or(other fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	return biComposite(op2Or, func(t T, u U) bool { return p.fn(t, u) || other.Test(t, u) },
		p.meta, fnwrap.MetaOf(other))
}

func (p BiPredicate[T, U]) Xor(other fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	return biComposite(op2Xor, func(t T, u U) bool { return p.fn(t, u) != other.Test(t, u) },
		p.meta, fnwrap.MetaOf(other))
}

func (p BiPredicate[T, U]) Nand(other fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	return biComposite(op2Nand, func(t T, u U) bool { return !(p.fn(t, u) && other.Test(t, u)) },
		p.meta, fnwrap.MetaOf(other))
}

func (p BiPredicate[T, U]) Nor(other fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	return biComposite(op2Nor, func(t T, u U) bool { return !(p.fn(t, u) || other.Test(t, u)) },
		p.meta, fnwrap.MetaOf(other))
}

func (p BiPredicate[T, U]) Not() BiPredicate[T, U] {
	return biComposite(opNot, func(t T, u U) bool { return !p.fn(t, u) }, p.meta)
}

func (p BiPredicate[T, U]) Meta() fnwrap.Meta {
	return p.meta
}

func (p BiPredicate[T, U]) Name() mo.Option[string] {
	return p.meta.Name()
}

func (p BiPredicate[T, U]) WithName(name string) BiPredicate[T, U] {
	p.meta = p.meta.WithName(name)
	return p
}

func (p BiPredicate[T, U]) String() string {
	return p.meta.Describe(biKind)
}

func (p BiPredicate[T, U]) ToFunc() BiFunc[T, U] {
	return p.fn
}

// BiFunc is the bare-closure adapter for BiPredicate.
type BiFunc[T, U any] func(T, U) bool

func OfBi[T, U any](fn func(T, U) bool) BiFunc[T, U] {
	return fn
}

func (f BiFunc[T, U]) Test(t T, u U) bool {
	return f(t, u)
}

func (f BiFunc[T, U]) And(other fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	return NewBi(f).And(other)
}

func (f BiFunc[T, U]) Or(other fnwrap.BiTester[T, U]) BiPredicate[T, U] {
	return NewBi(f).Or(other)
}

func (f BiFunc[T, U]) Not() BiPredicate[T, U] {
	return NewBi(f).Not()
}

func (f BiFunc[T, U]) ToBiPredicate(opts ...fnwrap.Option) BiPredicate[T, U] {
	return NewBi(f, opts...)
}
