package mutator

import (
	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/core"
	"github.com/samber/mo"
)

const biKind = "BiMutator"

// BiMutator wraps a func(*T, *U) that changes two distinct values.
//
// Mutate rejects the two pointers being the same location. Pointers of
// different types that overlap (a struct and one of its fields) cannot be
// detected here; avoiding them is up to the caller.
type BiMutator[T, U any] struct {
	meta fnwrap.Meta
	fn   func(*T, *U)
}

func NewBi[T, U any](fn func(*T, *U), opts ...fnwrap.Option) BiMutator[T, U] {
	fnwrap.MustCallable(biKind, fn)
	o := fnwrap.NewOptions(opts...)
	return BiMutator[T, U]{meta: fnwrap.NewMeta(o.Name), fn: fn}
}

func NamedBi[T, U any](name string, fn func(*T, *U)) BiMutator[T, U] {
	return NewBi(fn, fnwrap.WithName(name))
}

// Swap exchanges the values behind two pointers of the same type.
func Swap[T any]() BiMutator[T, T] {
	return NamedBi("swap", func(a, b *T) { *a, *b = *b, *a })
}

// Mutate panics with *fnwrap.AliasError when a and b are the same pointer.
func (b BiMutator[T, U]) Mutate(t *T, u *U) {
	if err := b.TryMutate(t, u); err != nil {
		panic(err)
	}
}

func (b BiMutator[T, U]) TryMutate(t *T, u *U) error {
	if aliased(t, u) {
		return &fnwrap.AliasError{Kind: biKind, Name: b.meta.Token()}
	}
	b.fn(t, u)
	return nil
}

// aliased reports whether t and u are the same non-nil location. Pointers of
// different types never compare equal as interface values.
func aliased[T, U any](t *T, u *U) bool {
	if t == nil || u == nil {
		return false
	}
	return any(t) == any(u)
}

func (b BiMutator[T, U]) AndThen(next fnwrap.BiMutable[T, U]) BiMutator[T, U] {
	return BiMutator[T, U]{
		meta: fnwrap.Composite("and_then", b.meta, fnwrap.MetaOf(next)),
		fn:   core.Gather(core.Seq(core.Spread(b.fn), core.Spread(next.Mutate))),
	}
}

func (b BiMutator[T, U]) When(p fnwrap.BiTester[T, U]) BiConditional[T, U] {
	return BiConditional[T, U]{
		meta:    fnwrap.Composite("when", b.meta, fnwrap.MetaOf(p)),
		primary: b.fn,
		test:    p,
	}
}

func (b BiMutator[T, U]) Meta() fnwrap.Meta {
	return b.meta
}

func (b BiMutator[T, U]) Name() mo.Option[string] {
	return b.meta.Name()
}

func (b BiMutator[T, U]) WithName(name string) BiMutator[T, U] {
	b.meta = b.meta.WithName(name)
	return b
}

func (b BiMutator[T, U]) String() string {
	return b.meta.Describe(biKind)
}

type BiConditional[T, U any] struct {
	meta    fnwrap.Meta
	primary func(*T, *U)
	test    fnwrap.BiTester[T, U]
}

func (c BiConditional[T, U]) OrElse(fallback fnwrap.BiMutable[T, U]) BiMutator[T, U] {
	test := func(p core.Pair[*T, *U]) bool {
		var t T
		var u U
		if p.First != nil {
			t = *p.First
		}
		if p.Second != nil {
			u = *p.Second
		}
		return c.test.Test(t, u)
	}
	run := core.Branch(test, core.Effect(core.Spread(c.primary)), core.Effect(core.Spread(fallback.Mutate)))
	return BiMutator[T, U]{
		meta: fnwrap.Composite("or_else", c.meta, fnwrap.MetaOf(fallback)),
		fn:   core.Gather(core.Discard(run)),
	}
}

// BiFunc is the bare-closure adapter for BiMutator.
type BiFunc[T, U any] func(*T, *U)

func OfBi[T, U any](fn func(*T, *U)) BiFunc[T, U] {
	return fn
}

func (f BiFunc[T, U]) Mutate(t *T, u *U) {
	f(t, u)
}

func (f BiFunc[T, U]) AndThen(next fnwrap.BiMutable[T, U]) BiMutator[T, U] {
	return NewBi(f).AndThen(next)
}

func (f BiFunc[T, U]) When(p fnwrap.BiTester[T, U]) BiConditional[T, U] {
	return NewBi(f).When(p)
}
