package consumer

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const kind = "Consumer"

// Consumer wraps a func(T). Copies share the callable.
type Consumer[T any] struct {
	meta fnwrap.Meta
	fn   func(T)
}

func New[T any](fn func(T), opts ...fnwrap.Option) Consumer[T] {
	fnwrap.MustCallable(kind, fn)
	o := fnwrap.NewOptions(opts...)
	return Consumer[T]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func Named[T any](name string, fn func(T)) Consumer[T] {
	return New(fn, fnwrap.WithName(name))
}

// From wraps any Acceptor. A Consumer is returned unchanged.
func From[T any](a fnwrap.Acceptor[T]) Consumer[T] {
	if c, ok := a.(Consumer[T]); ok {
		return c
	}
	fnwrap.MustCallable(kind, a)
	return Consumer[T]{meta: fnwrap.MetaOf(a), fn: a.Accept}
}

func Noop[T any]() Consumer[T] {
	return Named("noop", func(T) {})
}

// Chain runs every consumer on the same input, in order.
func Chain[T any](cs ...fnwrap.Acceptor[T]) Consumer[T] {
	steps := lo.Map(cs, func(c fnwrap.Acceptor[T], _ int) func(T) { return c.Accept })
	metas := lo.Map(cs, func(c fnwrap.Acceptor[T], _ int) fnwrap.Meta { return fnwrap.MetaOf(c) })
	return Consumer[T]{meta: fnwrap.Composite("chain", metas...), fn: core.Seq(steps...)}
}

func (c Consumer[T]) Accept(t T) {
	c.fn(t)
}

// AndThen runs c and then next on the same input.
func (c Consumer[T]) AndThen(next fnwrap.Acceptor[T]) Consumer[T] {
	return Consumer[T]{
		meta: fnwrap.Composite("and_then", c.meta, fnwrap.MetaOf(next)),
		fn:   core.Seq(c.fn, next.Accept),
	}
}

func (c Consumer[T]) When(p fnwrap.Tester[T]) Conditional[T] {
	return Conditional[T]{
		meta:    fnwrap.Composite("when", c.meta, fnwrap.MetaOf(p)),
		primary: c.fn,
		test:    p,
	}
}

func (c Consumer[T]) Meta() fnwrap.Meta {
	return c.meta
}

func (c Consumer[T]) Name() mo.Option[string] {
	return c.meta.Name()
}

func (c Consumer[T]) WithName(name string) Consumer[T] {
	c.meta = c.meta.WithName(name)
	return c
}

func (c Consumer[T]) String() string {
	return c.meta.Describe(kind)
}

func (c Consumer[T]) ToFunc() Func[T] {
	return c.fn
}

func (c Consumer[T]) ToOnce() Once[T] {
	return newOnce(c.fn, c.meta, fnwrap.NewOptions())
}

func (c Consumer[T]) ToSync(opts ...fnwrap.Option) Sync[T] {
	if name, ok := c.meta.Name().Get(); ok {
		opts = append([]fnwrap.Option{fnwrap.WithName(name)}, opts...)
	}
	return NewSync(c.fn, opts...)
}

type Conditional[T any] struct {
	meta    fnwrap.Meta
	primary func(T)
	test    fnwrap.Tester[T]
}

// OrElse completes the conditional; exactly one of the two consumers runs
// per call.
func (c Conditional[T]) OrElse(fallback fnwrap.Acceptor[T]) Consumer[T] {
	return Consumer[T]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   branch(c.test.Test, c.primary, fallback.Accept),
	}
}

func branch[T any](test func(T) bool, then, otherwise func(T)) func(T) {
	return core.Discard(core.Branch(test, core.Effect(then), core.Effect(otherwise)))
}

// Func lets a bare closure use the Consumer operators without being
// wrapped first.
type Func[T any] func(T)

func Of[T any](fn func(T)) Func[T] {
	return fn
}

func (f Func[T]) Accept(t T) {
	f(t)
}

func (f Func[T]) AndThen(next fnwrap.Acceptor[T]) Consumer[T] {
	return New(f).AndThen(next)
}

func (f Func[T]) When(p fnwrap.Tester[T]) Conditional[T] {
	return New(f).When(p)
}

func (f Func[T]) ToConsumer(opts ...fnwrap.Option) Consumer[T] {
	return New(f, opts...)
}
