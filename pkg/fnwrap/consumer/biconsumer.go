package consumer

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const biKind = "BiConsumer"

// BiConsumer wraps a func(T, U).
type BiConsumer[T, U any] struct {
	meta fnwrap.Meta
	fn   func(T, U)
}

func NewBi[T, U any](fn func(T, U), opts ...fnwrap.Option) BiConsumer[T, U] {
	fnwrap.MustCallable(biKind, fn)
	o := fnwrap.NewOptions(opts...)
	return BiConsumer[T, U]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func NamedBi[T, U any](name string, fn func(T, U)) BiConsumer[T, U] {
	return NewBi(fn, fnwrap.WithName(name))
}

func (b BiConsumer[T, U]) Accept(t T, u U) {
	b.fn(t, u)
}

func (b BiConsumer[T, U]) AndThen(next fnwrap.BiAcceptor[T, U]) BiConsumer[T, U] {
	return BiConsumer[T, U]{
		meta: fnwrap.Composite("and_then", b.meta, fnwrap.MetaOf(next)),
		fn:   core.Gather(core.Seq(core.Spread(b.fn), core.Spread(next.Accept))),
	}
}

func (b BiConsumer[T, U]) When(p fnwrap.BiTester[T, U]) BiConditional[T, U] {
	return BiConditional[T, U]{
		meta:    fnwrap.Composite("when", b.meta, fnwrap.MetaOf(p)),
		primary: b.fn,
		test:    p,
	}
}

func (b BiConsumer[T, U]) Meta() fnwrap.Meta {
	return b.meta
}

func (b BiConsumer[T, U]) Name() mo.Option[string] {
	return b.meta.Name()
}

func (b BiConsumer[T, U]) WithName(name string) BiConsumer[T, U] {
	b.meta = b.meta.WithName(name)
	return b
}

func (b BiConsumer[T, U]) String() string {
	return b.meta.Describe(biKind)
}

type BiConditional[T, U any] struct {
	meta    fnwrap.Meta
	primary func(T, U)
	test    fnwrap.BiTester[T, U]
}

func (c BiConditional[T, U]) OrElse(fallback fnwrap.BiAcceptor[T, U]) BiConsumer[T, U] {
	return BiConsumer[T, U]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   core.Gather(branch(core.Tuple(c.test.Test), core.Spread(c.primary), core.Spread(fallback.Accept))),
	}
}

// BiFunc is the bare-closure adapter for BiConsumer.
type BiFunc[T, U any] func(T, U)

func OfBi[T, U any](fn func(T, U)) BiFunc[T, U] {
	return fn
}

func (f BiFunc[T, U]) Accept(t T, u U) {
	f(t, u)
}

func (f BiFunc[T, U]) AndThen(next fnwrap.BiAcceptor[T, U]) BiConsumer[T, U] {
	return NewBi(f).AndThen(next)
}

func (f BiFunc[T, U]) When(p fnwrap.BiTester[T, U]) BiConditional[T, U] {
	return NewBi(f).When(p)
}
