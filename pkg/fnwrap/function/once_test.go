package function

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// consumedPanic runs f and returns the *fnwrap.ConsumedError it panicked with.
func consumedPanic(t *testing.T, f func()) *fnwrap.ConsumedError {
	t.Helper()

	var got *fnwrap.ConsumedError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			err, ok := r.(error)
			require.True(t, ok, "panic value %v is not an error", r)
			require.True(t, errors.As(err, &got), "unexpected panic: %v", err)
		}()
		f()
	}()
	return got
}

func TestOnce_SecondApplyPanics(t *testing.T) {
	t.Parallel()

	calls := 0
	o := NewOnce(func(n int) int {
		calls++
		return n * 2
	}, fnwrap.WithName("double_once"))

	assert.False(t, o.Consumed())
	assert.Equal(t, 42, o.Apply(21))
	assert.True(t, o.Consumed())

	err := consumedPanic(t, func() { o.Apply(1) })
	assert.Equal(t, "double_once", err.Name)
	assert.True(t, errors.Is(err, fnwrap.ErrConsumed))
	assert.Equal(t, 1, calls)
}

func TestOnce_TryApply(t *testing.T) {
	t.Parallel()

	o := NewOnce(func(s string) int { return len(s) })

	n, err := o.TryApply("four")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = o.TryApply("again")
	assert.ErrorIs(t, err, fnwrap.ErrConsumed)
	assert.Equal(t, 0, n)
}

func TestOnce_CopiesShareConsumption(t *testing.T) {
	t.Parallel()

	o := NewOnce(func(n int) int { return n })
	handle := o.WithName("handle")

	handle.Apply(1)
	assert.True(t, o.Consumed())
	consumedPanic(t, func() { o.Apply(1) })
}

func TestOnce_Discard(t *testing.T) {
	t.Parallel()

	called := false
	o := NewOnce(func(n int) int {
		called = true
		return n
	})

	o.Discard()
	_, err := o.TryApply(1)
	assert.ErrorIs(t, err, fnwrap.ErrConsumed)
	assert.False(t, called)
}

func TestOnce_ConcurrentCallsRunOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	o := NewOnce(func(n int) int {
		calls.Add(1)
		return n
	})

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := o.TryApply(i); err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(49), failures.Load())
}

func TestOnceAndThen_MovesOperands(t *testing.T) {
	t.Parallel()

	first := NewOnce(func(n int) int { return n + 1 }, fnwrap.WithName("add_one"))
	second := NewOnce(func(n int) int { return n * 2 }, fnwrap.WithName("double"))

	chained := first.AndThen(second)
	assert.True(t, first.Consumed())
	assert.True(t, second.Consumed())
	assert.False(t, chained.Consumed())

	consumedPanic(t, func() { first.Apply(1) })
	consumedPanic(t, func() { first.AndThen(double()) })

	assert.Equal(t, 12, chained.Apply(5))
	consumedPanic(t, func() { chained.Apply(5) })
}

func TestOnceAndThen_ChangesType(t *testing.T) {
	t.Parallel()

	o := OnceAndThen[int, int, string](NewOnce(func(n int) int { return n + 1 }), toString())
	assert.Equal(t, "6", o.Apply(5))
	assert.Equal(t, "FunctionOnce(<fn>.and_then(to_string))", o.String())
}

func TestOnce_WhenOrElse_OnlyTakenBranchRuns(t *testing.T) {
	t.Parallel()

	run := func(in int) (primaryCalls, fallbackCalls int, out string) {
		primary := NewOnce(func(n int) string {
			primaryCalls++
			return "primary"
		})
		fallback := NewOnce(func(n int) string {
			fallbackCalls++
			return "fallback"
		})
		positive := predicate.New(func(n int) bool { return n > 0 })

		f := primary.When(positive).OrElse(fallback)
		assert.True(t, primary.Consumed())
		assert.True(t, fallback.Consumed())

		out = f.Apply(in)
		_, err := f.TryApply(in)
		assert.ErrorIs(t, err, fnwrap.ErrConsumed)
		return
	}

	p, fb, out := run(5)
	assert.Equal(t, "primary", out)
	assert.Equal(t, 1, p)
	assert.Equal(t, 0, fb)

	p, fb, out = run(-5)
	assert.Equal(t, "fallback", out)
	assert.Equal(t, 0, p)
	assert.Equal(t, 1, fb)
}

func TestOnce_WhenTwiceOnBuilderPanics(t *testing.T) {
	t.Parallel()

	cond := NewOnce(func(n int) int { return n }).When(predicate.AlwaysTrue[int]())
	cond.OrElse(Identity[int]())
	consumedPanic(t, func() { cond.OrElse(Identity[int]()) })
}

func TestFunction_ToOnce(t *testing.T) {
	t.Parallel()

	f := double()
	o := f.ToOnce()
	assert.Equal(t, 10, o.Apply(5))
	consumedPanic(t, func() { o.Apply(5) })

	// the source stays repeatable
	assert.Equal(t, 10, f.Apply(5))
	assert.Equal(t, "FunctionOnce(double)", o.String())
}
