package fnwrap

import "github.com/samber/mo"

// Applier transforms an input into an output
type Applier[T, R any] interface {
	Apply(T) R
}

// BiApplier transforms two inputs into an output
type BiApplier[T, U, R any] interface {
	Apply(T, U) R
}

// Acceptor consumes an input for its side effects
type Acceptor[T any] interface {
	Accept(T)
}

// BiAcceptor consumes two inputs for their side effects
type BiAcceptor[T, U any] interface {
	Accept(T, U)
}

// Mutable changes the value behind the pointer in place
type Mutable[T any] interface {
	Mutate(*T)
}

// BiMutable changes two distinct values in place
type BiMutable[T, U any] interface {
	Mutate(*T, *U)
}

// Tester reports whether an input satisfies a condition
type Tester[T any] interface {
	Test(T) bool
}

// BiTester reports whether two inputs satisfy a condition
type BiTester[T, U any] interface {
	Test(T, U) bool
}

// Provider produces a value without input
type Provider[T any] interface {
	Get() T
}

// Ordering compares two values: negative when a < b, zero when equal,
// positive when a > b.
type Ordering[T any] interface {
	Compare(a, b T) int
}

// Named is implemented by every wrapper.
type Named interface {
	// Name returns the name set on the wrapper, or mo.None when unnamed
	Name() mo.Option[string]
}
