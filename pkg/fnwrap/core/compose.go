package core

// Pipe returns a func that runs f and feeds its output to g.
func Pipe[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Seq returns a func that runs every step on the same input, in order.
// Each step completes before the next begins.
func Seq[T any](steps ...func(T)) func(T) {
	fs := make([]func(T), len(steps))
	copy(fs, steps)

	return func(t T) {
		for _, f := range fs {
			f(t)
		}
	}
}

// Branch returns a func that runs then when test holds and otherwise when it
// does not. Exactly one of the two runs per call.
func Branch[T, R any](test func(T) bool, then, otherwise func(T) R) func(T) R {
	return func(t T) R {
		if test(t) {
			return then(t)
		}
		return otherwise(t)
	}
}

// Pair carries two arguments so two-input categories can reuse the
// single-input helpers above.
type Pair[A, B any] struct {
	First  A
	Second B
}

func Tuple[A, B, R any](f func(A, B) R) func(Pair[A, B]) R {
	return func(p Pair[A, B]) R {
		return f(p.First, p.Second)
	}
}

func Untuple[A, B, R any](f func(Pair[A, B]) R) func(A, B) R {
	return func(a A, b B) R {
		return f(Pair[A, B]{First: a, Second: b})
	}
}

// Effect adapts a side-effecting func to the result-returning shape used by
// Branch.
func Effect[T any](f func(T)) func(T) struct{} {
	return func(t T) struct{} {
		f(t)
		return struct{}{}
	}
}

// Discard drops the result of f.
func Discard[T, R any](f func(T) R) func(T) {
	return func(t T) {
		f(t)
	}
}

// Spread is Tuple for funcs without a result.
func Spread[A, B any](f func(A, B)) func(Pair[A, B]) {
	return func(p Pair[A, B]) {
		f(p.First, p.Second)
	}
}

// Gather is Untuple for funcs without a result.
func Gather[A, B any](f func(Pair[A, B])) func(A, B) {
	return func(a A, b B) {
		f(Pair[A, B]{First: a, Second: b})
	}
}
