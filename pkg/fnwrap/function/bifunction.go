package function

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const biKind = "BiFunction"

// BiFunction wraps a func(T, U) R.
type BiFunction[T, U, R any] struct {
	meta fnwrap.Meta
	fn   func(T, U) R
}

func NewBi[T, U, R any](fn func(T, U) R, opts ...fnwrap.Option) BiFunction[T, U, R] {
	fnwrap.MustCallable(biKind, fn)
	o := fnwrap.NewOptions(opts...)
	return BiFunction[T, U, R]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func NamedBi[T, U, R any](name string, fn func(T, U) R) BiFunction[T, U, R] {
	return NewBi(fn, fnwrap.WithName(name))
}

// BiAndThen returns a BiFunction that runs f and passes its output to g.
func BiAndThen[T, U, R, V any](f fnwrap.BiApplier[T, U, R], g fnwrap.Applier[R, V]) BiFunction[T, U, V] {
	return BiFunction[T, U, V]{
		meta: fnwrap.Composite("and_then", fnwrap.MetaOf(f), fnwrap.MetaOf(g)),
		fn:   core.Untuple(core.Pipe(core.Tuple(f.Apply), g.Apply)),
	}
}

func (b BiFunction[T, U, R]) Apply(t T, u U) R {
	return b.fn(t, u)
}

func (b BiFunction[T, U, R]) AndThen(next fnwrap.Applier[R, R]) BiFunction[T, U, R] {
	return BiAndThen[T, U, R, R](b, next)
}

func (b BiFunction[T, U, R]) When(p fnwrap.BiTester[T, U]) BiConditional[T, U, R] {
	return BiConditional[T, U, R]{
		meta:    fnwrap.Composite("when", b.meta, fnwrap.MetaOf(p)),
		primary: b.fn,
		test:    p,
	}
}

func (b BiFunction[T, U, R]) Meta() fnwrap.Meta {
	return b.meta
}

func (b BiFunction[T, U, R]) Name() mo.Option[string] {
	return b.meta.Name()
}

func (b BiFunction[T, U, R]) WithName(name string) BiFunction[T, U, R] {
	b.meta = b.meta.WithName(name)
	return b
}

func (b BiFunction[T, U, R]) String() string {
	return b.meta.Describe(biKind)
}

func (b BiFunction[T, U, R]) ToFunc() BiFunc[T, U, R] {
	return b.fn
}

type BiConditional[T, U, R any] struct {
	meta    fnwrap.Meta
	primary func(T, U) R
	test    fnwrap.BiTester[T, U]
}

func (c BiConditional[T, U, R]) OrElse(fallback fnwrap.BiApplier[T, U, R]) BiFunction[T, U, R] {
	branch := core.Branch(core.Tuple(c.test.Test), core.Tuple(c.primary), core.Tuple(fallback.Apply))
	return BiFunction[T, U, R]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   core.Untuple(branch),
	}
}

// BiFunc is the bare-closure adapter for BiFunction.
type BiFunc[T, U, R any] func(T, U) R

func OfBi[T, U, R any](fn func(T, U) R) BiFunc[T, U, R] {
	return fn
}

func (f BiFunc[T, U, R]) Apply(t T, u U) R {
	return f(t, u)
}

func (f BiFunc[T, U, R]) AndThen(next fnwrap.Applier[R, R]) BiFunction[T, U, R] {
	return NewBi(f).AndThen(next)
}

func (f BiFunc[T, U, R]) When(p fnwrap.BiTester[T, U]) BiConditional[T, U, R] {
	return NewBi(f).When(p)
}

func (f BiFunc[T, U, R]) ToBiFunction(opts ...fnwrap.Option) BiFunction[T, U, R] {
	return NewBi(f, opts...)
}
