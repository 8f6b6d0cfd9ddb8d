package function

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/ib-77/fnwrap/pkg/fnwrap/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSync_TwoGoroutinesNoCrossContamination(t *testing.T) {
	t.Parallel()

	doubler := NewSync(func(n int) int { return n * 2 }, fnwrap.WithName("double"))
	shared := doubler

	var a, b int
	var g errgroup.Group
	g.Go(func() error {
		a = doubler.Apply(21)
		return nil
	})
	g.Go(func() error {
		b = shared.Apply(100)
		return nil
	})
	require.NoError(t, g.Wait())

	assert.Equal(t, 42, a)
	assert.Equal(t, 200, b)
}

func TestSync_SerializesStatefulCallable(t *testing.T) {
	t.Parallel()

	counter := 0
	next := NewSync(func(step int) int {
		counter += step
		return counter
	})

	const n = 200
	results := make([]int, n)
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			results[i] = next.Apply(1)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	sort.Ints(results)
	for i, v := range results {
		assert.Equal(t, i+1, v)
	}
	assert.Equal(t, n, counter)
}

func TestSync_PoisonedAfterPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	s := NewSync(func(n int) int {
		calls++
		if n < 0 {
			panic(boom)
		}
		return n
	}, fnwrap.WithName("fragile"))

	assert.Equal(t, 1, s.Apply(1))

	func() {
		defer func() {
			assert.Equal(t, boom, recover())
		}()
		s.Apply(-1)
	}()

	assert.True(t, s.Poisoned())

	_, err := s.TryApply(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, fnwrap.ErrPoisoned)
	assert.ErrorIs(t, err, boom)

	var perr *fnwrap.PoisonedError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "fragile", perr.Name)
	assert.Equal(t, boom, perr.Value)

	func() {
		defer func() {
			r := recover()
			rerr, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, rerr, fnwrap.ErrPoisoned)
		}()
		s.Apply(3)
	}()
	assert.Equal(t, 2, calls)

	s.ClearPoison()
	assert.False(t, s.Poisoned())
	assert.Equal(t, 4, s.Apply(4))
}

func TestSync_AndThenSelfDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	counter := 0
	inc := NewSync(func(n int) int {
		counter++
		return n + 1
	})

	twice := inc.AndThen(inc)
	assert.Equal(t, 7, twice.Apply(5))
	assert.Equal(t, 2, counter)
}

func TestSync_CompositeReportsPoison(t *testing.T) {
	t.Parallel()

	fragile := NewSync(func(n int) int {
		if n == 0 {
			panic("zero")
		}
		return n
	})
	chained := SyncAndThen[int, int, string](fragile, toString())

	assert.Equal(t, "3", chained.Apply(3))
	assert.Panics(t, func() { chained.Apply(0) })

	assert.True(t, chained.Poisoned())
	assert.True(t, fragile.Poisoned())
	_, err := chained.TryApply(3)
	assert.ErrorIs(t, err, fnwrap.ErrPoisoned)

	chained.ClearPoison()
	assert.False(t, fragile.Poisoned())
	assert.Equal(t, "3", chained.Apply(3))
}

func TestSync_WhenOrElse(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var seen []string
	record := func(tag string) func(int) int {
		return func(n int) int {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, tag)
			return n
		}
	}

	f := NewSync(record("primary")).
		When(predicate.New(func(n int) bool { return n%2 == 0 })).
		OrElse(NewSync(record("fallback")))

	var g errgroup.Group
	for i := range 10 {
		g.Go(func() error {
			f.Apply(i)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	primary, fallback := 0, 0
	for _, s := range seen {
		if s == "primary" {
			primary++
		} else {
			fallback++
		}
	}
	assert.Equal(t, 5, primary)
	assert.Equal(t, 5, fallback)
}

func TestFunction_ToSyncKeepsName(t *testing.T) {
	t.Parallel()

	s := double().ToSync()
	assert.Equal(t, 10, s.Apply(5))
	assert.Equal(t, "FunctionSync(double)", s.String())
}
