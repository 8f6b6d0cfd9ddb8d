package function

import "github.com/ib-77/fnwrap/pkg/fnwrap"

// Func lets a bare closure use the Function operators without being
// wrapped first. A composed Func behaves exactly like the same composition
// built from Functions.
type Func[T, R any] func(T) R

// Of converts a closure to Func, letting the compiler infer T and R.
func Of[T, R any](fn func(T) R) Func[T, R] {
	return fn
}

func (f Func[T, R]) Apply(t T) R {
	return f(t)
}

func (f Func[T, R]) AndThen(next fnwrap.Applier[R, R]) Function[T, R] {
	return New(f).AndThen(next)
}

func (f Func[T, R]) Compose(before fnwrap.Applier[T, T]) Function[T, R] {
	return New(f).Compose(before)
}

func (f Func[T, R]) When(p fnwrap.Tester[T]) Conditional[T, R] {
	return New(f).When(p)
}

func (f Func[T, R]) ToFunction(opts ...fnwrap.Option) Function[T, R] {
	return New(f, opts...)
}
