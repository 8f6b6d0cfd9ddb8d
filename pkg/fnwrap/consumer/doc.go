// Package consumer wraps side-effecting callables: func(T) and func(T, U).
//
// Chaining consumers does not pipe values: AndThen runs both steps on the
// same input, the first finishing before the second starts.
package consumer
