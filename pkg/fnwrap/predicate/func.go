package predicate

import "github.com/ib-77/fnwrap/pkg/fnwrap"

// Func lets a bare closure use the Predicate operators without being
// wrapped first:
//
//	positive := predicate.Of(func(n int) bool { return n > 0 })
//	even := positive.And(predicate.Of(func(n int) bool { return n%2 == 0 }))
type Func[T any] func(T) bool

// Of converts a closure to Func, letting the compiler infer T.
func Of[T any](fn func(T) bool) Func[T] {
	return fn
}

func (f Func[T]) Test(v T) bool {
	return f(v)
}

func (f Func[T]) And(other fnwrap.Tester[T]) Predicate[T] {
	return New(f).And(other)
}

func (f Func[T]) Or(other fnwrap.Tester[T]) Predicate[T] {
	return New(f).Or(other)
}

func (f Func[T]) Xor(other fnwrap.Tester[T]) Predicate[T] {
	return New(f).Xor(other)
}

func (f Func[T]) Not() Predicate[T] {
	return New(f).Not()
}

func (f Func[T]) ToPredicate(opts ...fnwrap.Option) Predicate[T] {
	return New(f, opts...)
}
