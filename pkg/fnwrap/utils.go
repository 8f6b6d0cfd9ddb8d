package fnwrap

import (
	"fmt"

	"github.com/samber/lo"
)

// IsNil reports whether i is nil or holds a nil pointer, func, map, chan,
// slice or interface.
func IsNil(i interface{}) bool {
	return lo.IsNil(i)
}

// MustCallable panics with an error wrapping ErrNilCallable when fn is nil.
// Constructors call it so a nil callable fails at construction, not at
// first invocation.
func MustCallable(kind string, fn any) {
	if IsNil(fn) {
		panic(fmt.Errorf("%s: %w", kind, ErrNilCallable))
	}
}
