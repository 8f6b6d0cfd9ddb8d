// Package supplier wraps zero-input producers: func() T.
//
// A conditional supplier tests the value its primary produced; when the
// test fails the fallback is asked for a value instead.
package supplier
