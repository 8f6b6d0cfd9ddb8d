// Package function wraps transformations: func(T) R and func(T, U) R.
//
// Go methods cannot introduce type parameters, so chaining that changes the
// output type is a package function (AndThen, Compose, OnceAndThen,
// SyncAndThen); the same-type forms are also available as methods.
//
// Key operations:
// - New/Named/Of/Identity/Constant: build a Function (Of gives a bare Func adapter)
// - AndThen: run f, feed its output to g
// - Compose: the mirror of AndThen, g runs first
// - When(p).OrElse(fallback): run exactly one branch per call
// - NewOnce: call-once Function; the second call panics with *fnwrap.ConsumedError
// - NewSync: mutex-serialized Function for stateful callables
// - NewBi: two-input Function with the same operators
package function
