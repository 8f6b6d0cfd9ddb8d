// Package predicate wraps boolean tests.
//
// Predicates only observe their input, so there is no Sync variant:
// a Predicate is lock-free and may be shared between goroutines whenever
// the wrapped callable tolerates concurrent calls.
//
// Key operations:
// - New/Named/Of: wrap a callable (Of gives a bare Func adapter)
// - And/Or/Not/Xor/Nand/Nor: combine, evaluating left to right with short-circuit
// - All/Any/None: combine many
// - BiPredicate: the same over two inputs
package predicate
