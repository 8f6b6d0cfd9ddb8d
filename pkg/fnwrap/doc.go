// Package fnwrap holds the vocabulary shared by every wrapper family:
// capability interfaces, wrapper metadata (name, identity, display),
// construction options, and the errors this layer can raise.
//
// Wrapper families live in sub-packages, one per behaviour category:
//   - function: transform one (or two) inputs into an output
//   - consumer: side-effecting consumption of one or two inputs
//   - mutator: in-place mutation through a pointer
//   - predicate: boolean tests
//   - supplier: zero-input value production
//   - comparator: two-input ordering
//
// The function, consumer, mutator and supplier families offer three shapes:
//   - the plain wrapper: repeatable and lock-free; copies share the callable
//   - Once: call-once; a second invocation panics with *ConsumedError
//   - Sync: mutex-serialized invocation for stateful callables used
//     from several goroutines
//
// Errors raised by wrapped callables are never caught or rewritten here.
package fnwrap
