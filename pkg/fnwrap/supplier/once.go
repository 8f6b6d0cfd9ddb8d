package supplier

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const onceKind = "SupplierOnce"

// Once is a Supplier that may be asked for a value at most once.
// Unlike Memoize, the second Get is an error rather than a cached value.
type Once[T any] struct {
	meta fnwrap.Meta
	cell *core.Cell[func() T]
	opts fnwrap.Options
}

func NewOnce[T any](fn func() T, opts ...fnwrap.Option) Once[T] {
	fnwrap.MustCallable(onceKind, fn)
	o := fnwrap.NewOptions(opts...)
	return newOnce(fn, fnwrap.NewMeta(o.Name), o)
}

func newOnce[T any](fn func() T, meta fnwrap.Meta, opts fnwrap.Options) Once[T] {
	return Once[T]{meta: meta, cell: core.NewCell(fn), opts: opts}
}

func (o Once[T]) Get() T {
	return o.take()()
}

func (o Once[T]) TryGet() (T, error) {
	fn, err := core.TryTake(o.cell, onceKind, o.meta, o.opts)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(), nil
}

func (o Once[T]) Consumed() bool {
	return o.cell.Consumed()
}

func (o Once[T]) Discard() {
	o.cell.Discard()
}

func (o Once[T]) take() func() T {
	return core.MustTake(o.cell, onceKind, o.meta, o.opts)
}

func move[T any](p fnwrap.Provider[T]) func() T {
	if o, ok := p.(Once[T]); ok {
		return o.take()
	}
	return p.Get
}

// OnceMap moves s into a Once whose value is passed through f.
func OnceMap[T, R any](s Once[T], f fnwrap.Applier[T, R]) Once[R] {
	meta := fnwrap.Composite("map", s.meta, fnwrap.MetaOf(f))
	get := s.take()
	return newOnce(func() R { return f.Apply(get()) }, meta, s.opts)
}

func (o Once[T]) Map(f fnwrap.Applier[T, T]) Once[T] {
	return OnceMap(o, f)
}

func (o Once[T]) When(p fnwrap.Tester[T]) OnceConditional[T] {
	meta := fnwrap.Composite("when", o.meta, fnwrap.MetaOf(p))
	return OnceConditional[T]{meta: meta, primary: core.NewCell(o.take()), test: p, opts: o.opts}
}

func (o Once[T]) Meta() fnwrap.Meta {
	return o.meta
}

func (o Once[T]) Name() mo.Option[string] {
	return o.meta.Name()
}

func (o Once[T]) WithName(name string) Once[T] {
	o.meta = o.meta.WithName(name)
	return o
}

func (o Once[T]) String() string {
	return o.meta.Describe(onceKind)
}

type OnceConditional[T any] struct {
	meta    fnwrap.Meta
	primary *core.Cell[func() T]
	test    fnwrap.Tester[T]
	opts    fnwrap.Options
}

func (c OnceConditional[T]) OrElse(fallback fnwrap.Provider[T]) Once[T] {
	meta := fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback))
	primary := core.MustTake(c.primary, onceKind, c.meta, c.opts)
	return newOnce(choose(primary, c.test.Test, move(fallback)), meta, c.opts)
}
