// Package mutator wraps callables that change a value in place through a
// pointer: func(*T) and func(*T, *U).
//
// AndThen runs both steps on the same pointer, so the second step sees the
// value as the first left it. Predicates used with When receive a copy of
// the pointed-to value, never the pointer itself.
package mutator
