package function

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const onceKind = "FunctionOnce"

// Once wraps a callable that may run at most once. Copies share the
// consumed state. Composing a Once moves its callable into the composite,
// which consumes the operand: invoking or composing it again panics with
// *fnwrap.ConsumedError.
type Once[T, R any] struct {
	meta fnwrap.Meta
	cell *core.Cell[func(T) R]
	opts fnwrap.Options
}

func NewOnce[T, R any](fn func(T) R, opts ...fnwrap.Option) Once[T, R] {
	fnwrap.MustCallable(onceKind, fn)
	o := fnwrap.NewOptions(opts...)
	return newOnce(fn, fnwrap.NewMeta(o.Name), o)
}

func newOnce[T, R any](fn func(T) R, meta fnwrap.Meta, opts fnwrap.Options) Once[T, R] {
	return Once[T, R]{meta: meta, cell: core.NewCell(fn), opts: opts}
}

// Apply runs the callable. Panics with *fnwrap.ConsumedError if it has
// already run or was moved into another wrapper.
func (o Once[T, R]) Apply(t T) R {
	return core.MustTake(o.cell, onceKind, o.meta, o.opts)(t)
}

// TryApply is Apply returning an error wrapping fnwrap.ErrConsumed instead
// of panicking.
func (o Once[T, R]) TryApply(t T) (R, error) {
	fn, err := core.TryTake(o.cell, onceKind, o.meta, o.opts)
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(t), nil
}

func (o Once[T, R]) Consumed() bool {
	return o.cell.Consumed()
}

// Discard consumes the callable without running it.
func (o Once[T, R]) Discard() {
	o.cell.Discard()
}

func (o Once[T, R]) take() func(T) R {
	return core.MustTake(o.cell, onceKind, o.meta, o.opts)
}

// move takes the callable out of a when it is a Once, so the composite
// becomes its only owner. Other Appliers are shared.
func move[T, R any](a fnwrap.Applier[T, R]) func(T) R {
	if o, ok := a.(Once[T, R]); ok {
		return o.take()
	}
	return a.Apply
}

// OnceAndThen moves first (and second, if it is a Once) into a new Once
// that runs first and feeds its output to second.
func OnceAndThen[T, R, V any](first Once[T, R], second fnwrap.Applier[R, V]) Once[T, V] {
	meta := fnwrap.Composite("and_then", first.meta, fnwrap.MetaOf(second))
	f := first.take()
	g := move(second)
	return newOnce(core.Pipe(f, g), meta, first.opts)
}

func (o Once[T, R]) AndThen(next fnwrap.Applier[R, R]) Once[T, R] {
	return OnceAndThen(o, next)
}

// When moves o into a conditional builder.
func (o Once[T, R]) When(p fnwrap.Tester[T]) OnceConditional[T, R] {
	meta := fnwrap.Composite("when", o.meta, fnwrap.MetaOf(p))
	return OnceConditional[T, R]{
		meta:    meta,
		primary: core.NewCell(o.take()),
		test:    p,
		opts:    o.opts,
	}
}

func (o Once[T, R]) Meta() fnwrap.Meta {
	return o.meta
}

func (o Once[T, R]) Name() mo.Option[string] {
	return o.meta.Name()
}

// WithName returns a handle carrying name. It shares the consumed state
// with o.
func (o Once[T, R]) WithName(name string) Once[T, R] {
	o.meta = o.meta.WithName(name)
	return o
}

func (o Once[T, R]) String() string {
	return o.meta.Describe(onceKind)
}

// OnceConditional is a Once paired with a predicate, waiting for a fallback.
type OnceConditional[T, R any] struct {
	meta    fnwrap.Meta
	primary *core.Cell[func(T) R]
	test    fnwrap.Tester[T]
	opts    fnwrap.Options
}

// OrElse completes the conditional. Only the branch selected by the
// predicate runs; the other is dropped without being called.
func (c OnceConditional[T, R]) OrElse(fallback fnwrap.Applier[T, R]) Once[T, R] {
	meta := fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback))
	primary := core.MustTake(c.primary, onceKind, c.meta, c.opts)
	return newOnce(core.Branch(c.test.Test, primary, move(fallback)), meta, c.opts)
}
