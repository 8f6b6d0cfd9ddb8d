package function

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const kind = "Function"

// Function wraps a func(T) R. It is repeatable and lock-free; copies share
// the callable, so a Function may be handed to several goroutines when the
// callable tolerates concurrent calls. Stateful callables used from several
// goroutines belong in a Sync.
type Function[T, R any] struct {
	meta fnwrap.Meta
	fn   func(T) R
}

func New[T, R any](fn func(T) R, opts ...fnwrap.Option) Function[T, R] {
	fnwrap.MustCallable(kind, fn)
	o := fnwrap.NewOptions(opts...)
	return Function[T, R]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func Named[T, R any](name string, fn func(T) R) Function[T, R] {
	return New(fn, fnwrap.WithName(name))
}

// From wraps any Applier. A Function is returned unchanged.
func From[T, R any](a fnwrap.Applier[T, R]) Function[T, R] {
	if f, ok := a.(Function[T, R]); ok {
		return f
	}
	fnwrap.MustCallable(kind, a)
	return Function[T, R]{meta: fnwrap.MetaOf(a), fn: a.Apply}
}

func Identity[T any]() Function[T, T] {
	return Named("identity", func(t T) T { return t })
}

// Constant ignores its input and returns v.
func Constant[T, R any](v R) Function[T, R] {
	return Named("constant", func(T) R { return v })
}

// AndThen returns a Function that runs f and passes its output to g.
func AndThen[T, R, V any](f fnwrap.Applier[T, R], g fnwrap.Applier[R, V]) Function[T, V] {
	return Function[T, V]{
		meta: fnwrap.Composite("and_then", fnwrap.MetaOf(f), fnwrap.MetaOf(g)),
		fn:   core.Pipe(f.Apply, g.Apply),
	}
}

// Compose returns a Function that runs g and passes its output to f.
func Compose[T, R, V any](f fnwrap.Applier[R, V], g fnwrap.Applier[T, R]) Function[T, V] {
	return Function[T, V]{
		meta: fnwrap.Composite("compose", fnwrap.MetaOf(f), fnwrap.MetaOf(g)),
		fn:   core.Pipe(g.Apply, f.Apply),
	}
}

func (f Function[T, R]) Apply(t T) R {
	return f.fn(t)
}

// AndThen is the same-type form of the package AndThen.
func (f Function[T, R]) AndThen(next fnwrap.Applier[R, R]) Function[T, R] {
	return AndThen[T, R, R](f, next)
}

// Compose is the same-type form of the package Compose.
func (f Function[T, R]) Compose(before fnwrap.Applier[T, T]) Function[T, R] {
	return Compose[T, T, R](f, before)
}

// When starts a conditional; the result is not callable until OrElse.
func (f Function[T, R]) When(p fnwrap.Tester[T]) Conditional[T, R] {
	return Conditional[T, R]{
		meta:    fnwrap.Composite("when", f.meta, fnwrap.MetaOf(p)),
		primary: f.fn,
		test:    p,
	}
}

func (f Function[T, R]) Meta() fnwrap.Meta {
	return f.meta
}

func (f Function[T, R]) Name() mo.Option[string] {
	return f.meta.Name()
}

func (f Function[T, R]) WithName(name string) Function[T, R] {
	f.meta = f.meta.WithName(name)
	return f
}

func (f Function[T, R]) String() string {
	return f.meta.Describe(kind)
}

func (f Function[T, R]) ToFunc() Func[T, R] {
	return f.fn
}

// ToOnce returns a call-once Function over the same callable. f itself
// stays repeatable.
func (f Function[T, R]) ToOnce() Once[T, R] {
	return newOnce(f.fn, f.meta, fnwrap.NewOptions())
}

// ToSync returns a Sync over the same callable, carrying f's name.
func (f Function[T, R]) ToSync(opts ...fnwrap.Option) Sync[T, R] {
	if name, ok := f.meta.Name().Get(); ok {
		opts = append([]fnwrap.Option{fnwrap.WithName(name)}, opts...)
	}
	return NewSync(f.fn, opts...)
}

// Conditional is a Function paired with a predicate, waiting for a fallback.
type Conditional[T, R any] struct {
	meta    fnwrap.Meta
	primary func(T) R
	test    fnwrap.Tester[T]
}

// OrElse completes the conditional. The predicate runs first on every call;
// the primary runs when it holds and fallback runs otherwise, never both.
func (c Conditional[T, R]) OrElse(fallback fnwrap.Applier[T, R]) Function[T, R] {
	return Function[T, R]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   core.Branch(c.test.Test, c.primary, fallback.Apply),
	}
}
