package core

import (
	"bytes"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeAndSeq(t *testing.T) {
	t.Parallel()

	inc := func(n int) int { return n + 1 }
	double := func(n int) int { return n * 2 }
	assert.Equal(t, 12, Pipe(inc, double)(5))

	var order []string
	steps := []func(string){
		func(s string) { order = append(order, "a"+s) },
		func(s string) { order = append(order, "b"+s) },
	}
	seq := Seq(steps...)
	steps[1] = func(string) { order = append(order, "replaced") }

	seq("!")
	assert.Equal(t, []string{"a!", "b!"}, order)
}

func TestBranch_RunsExactlyOne(t *testing.T) {
	t.Parallel()

	var thenCalls, elseCalls int
	b := Branch(
		func(n int) bool { return n > 0 },
		func(n int) int { thenCalls++; return n },
		func(n int) int { elseCalls++; return -n },
	)

	assert.Equal(t, 3, b(3))
	assert.Equal(t, 4, b(-4))
	assert.Equal(t, 1, thenCalls)
	assert.Equal(t, 1, elseCalls)
}

func TestPairHelpers(t *testing.T) {
	t.Parallel()

	add := Untuple(Tuple(func(a, b int) int { return a + b }))
	assert.Equal(t, 5, add(2, 3))

	var got []int
	put := Gather(Spread(func(a, b int) { got = append(got, a, b) }))
	put(1, 2)
	assert.Equal(t, []int{1, 2}, got)

	n := 0
	Discard(Effect(func(d int) { n += d }))(4)
	assert.Equal(t, 4, n)
}

func TestCell(t *testing.T) {
	t.Parallel()

	c := NewCell(func() int { return 1 })
	assert.False(t, c.Consumed())

	fn, ok := c.Take()
	require.True(t, ok)
	assert.Equal(t, 1, fn())
	assert.True(t, c.Consumed())

	_, ok = c.Take()
	assert.False(t, ok)

	d := NewCell(func() {})
	d.Discard()
	_, ok = d.Take()
	assert.False(t, ok)
}

func TestCell_ConcurrentTakeWinsOnce(t *testing.T) {
	t.Parallel()

	c := NewCell(func() {})
	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.Take(); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestTake(t *testing.T) {
	t.Parallel()

	m := fnwrap.NewMeta(mo.Some("job"))
	c := NewCell(func() {})
	opts := fnwrap.NewOptions()

	_ = MustTake(c, "ConsumerOnce", m, opts)
	_, err := TryTake(c, "ConsumerOnce", m, opts)
	assert.ErrorIs(t, err, fnwrap.ErrConsumed)
	assert.EqualError(t, err, "ConsumerOnce(job): callable already consumed")
	assert.Panics(t, func() { MustTake(c, "ConsumerOnce", m, opts) })
}

type poisonRecorder struct {
	mu       sync.Mutex
	poisoned []string
}

func (r *poisonRecorder) RecordCall(string)       {}
func (r *poisonRecorder) RecordPanic(string, any) {}
func (r *poisonRecorder) RecordPoison(w string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.poisoned = append(r.poisoned, w)
}

func TestGuard_PoisonPolicy(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := &poisonRecorder{}
	g := NewGuard("FunctionSync", fnwrap.NewOptions(
		fnwrap.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		fnwrap.WithRecorder(rec),
	))

	require.NoError(t, g.Do("f", func() {}))
	assert.PanicsWithValue(t, 42, func() { _ = g.Do("f", func() { panic(42) }) })
	assert.True(t, g.Poisoned())
	assert.Equal(t, []string{"f"}, rec.poisoned)
	assert.Contains(t, buf.String(), "callable panicked while holding lock")

	ran := false
	err := g.Do("f", func() { ran = true })
	var perr *fnwrap.PoisonedError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 42, perr.Value)
	assert.False(t, ran)

	g.Clear()
	assert.False(t, g.Poisoned())
	require.NoError(t, g.Do("f", func() { ran = true }))
	assert.True(t, ran)
}

func TestGuards(t *testing.T) {
	t.Parallel()

	a := NewGuard("k", fnwrap.NewOptions())
	b := NewGuard("k", fnwrap.NewOptions())
	all := Guards([]*Guard{a}, []*Guard{b, a}, nil)
	assert.Len(t, all, 2)

	assert.Panics(t, func() { _ = a.Do("a", func() { panic("x") }) })
	assert.True(t, AnyPoisoned(all))
	ClearAll(all)
	assert.False(t, AnyPoisoned(all))
}
