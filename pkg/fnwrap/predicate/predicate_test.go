package predicate

import (
	"errors"
	"testing"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positive() Predicate[int] {
	return Named("positive", func(n int) bool { return n > 0 })
}

func even() Predicate[int] {
	return Named("even", func(n int) bool { return n%2 == 0 })
}

func TestPredicate_Test(t *testing.T) {
	t.Parallel()

	p := positive()
	assert.True(t, p.Test(3))
	assert.False(t, p.Test(-3))
	assert.False(t, p.Test(0))
}

func TestPredicate_Combinators(t *testing.T) {
	t.Parallel()

	p, e := positive(), even()
	cases := []struct {
		in                          int
		and, or, xor, nand, nor, np bool
	}{
		{in: 4, and: true, or: true, xor: false, nand: false, nor: false, np: false},
		{in: 3, and: false, or: true, xor: true, nand: true, nor: false, np: false},
		{in: -2, and: false, or: true, xor: true, nand: true, nor: false, np: true},
		{in: -3, and: false, or: false, xor: false, nand: true, nor: true, np: true},
	}

	for _, c := range cases {
		assert.Equal(t, c.and, p.And(e).Test(c.in), "and(%d)", c.in)
		assert.Equal(t, c.or, p.Or(e).Test(c.in), "or(%d)", c.in)
		assert.Equal(t, c.xor, p.Xor(e).Test(c.in), "xor(%d)", c.in)
		assert.Equal(t, c.nand, p.Nand(e).Test(c.in), "nand(%d)", c.in)
		assert.Equal(t, c.nor, p.Nor(e).Test(c.in), "nor(%d)", c.in)
		assert.Equal(t, c.np, p.Not().Test(c.in), "not(%d)", c.in)
	}
}

func TestPredicate_AndShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	counted := New(func(n int) bool {
		calls++
		return true
	})

	assert.False(t, AlwaysFalse[int]().And(counted).Test(1))
	assert.True(t, AlwaysTrue[int]().Or(counted).Test(1))
	assert.Equal(t, 0, calls)

	assert.True(t, AlwaysTrue[int]().And(counted).Test(1))
	assert.Equal(t, 1, calls)
}

func TestPredicate_AllAnyNone(t *testing.T) {
	t.Parallel()

	all := All[int](positive(), even())
	anyOf := Any[int](positive(), even())
	none := None[int](positive(), even())

	assert.True(t, all.Test(2))
	assert.False(t, all.Test(3))
	assert.True(t, anyOf.Test(3))
	assert.False(t, anyOf.Test(-3))
	assert.True(t, none.Test(-3))
	assert.False(t, none.Test(-2))

	assert.True(t, All[int]().Test(1))
	assert.False(t, Any[int]().Test(1))
}

func TestPredicate_Equal(t *testing.T) {
	t.Parallel()

	p := Equal("go")
	assert.True(t, p.Test("go"))
	assert.False(t, p.Test("rust"))
}

func TestPredicate_Naming(t *testing.T) {
	t.Parallel()

	unnamed := New(func(n int) bool { return n > 0 })
	assert.True(t, unnamed.Name().IsAbsent())
	assert.Equal(t, "Predicate(<fn>)", unnamed.String())

	named := unnamed.WithName("positive")
	name, ok := named.Name().Get()
	require.True(t, ok)
	assert.Equal(t, "positive", name)
	assert.Equal(t, "Predicate(positive)", named.String())

	// the copy keeps its identity and the original stays unnamed
	assert.Equal(t, unnamed.Meta().ID(), named.Meta().ID())
	assert.True(t, unnamed.Name().IsAbsent())
}

func TestPredicate_CompositeHasNoName(t *testing.T) {
	t.Parallel()

	p, e := positive(), even()
	both := p.And(e)

	assert.True(t, both.Name().IsAbsent())
	assert.NotEqual(t, p.Meta().ID(), both.Meta().ID())
	assert.Equal(t, "Predicate(positive.and(even))", both.String())
}

func TestPredicate_BareFuncComposesLikeWrapper(t *testing.T) {
	t.Parallel()

	bare := Of(func(n int) bool { return n > 0 }).And(Of(func(n int) bool { return n%2 == 0 }))
	wrapped := New(func(n int) bool { return n > 0 }).And(New(func(n int) bool { return n%2 == 0 }))

	for _, n := range []int{-4, -3, 0, 1, 2, 7, 10} {
		assert.Equal(t, wrapped.Test(n), bare.Test(n), "input %d", n)
	}
}

func TestPredicate_From(t *testing.T) {
	t.Parallel()

	p := positive()
	assert.Equal(t, p.Meta().ID(), From[int](p).Meta().ID())

	fromBare := From[int](Func[int](func(n int) bool { return n < 0 }))
	assert.True(t, fromBare.Test(-1))
	assert.True(t, fromBare.Name().IsAbsent())
}

func TestPredicate_NilCallablePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, fnwrap.ErrNilCallable))
	}()

	New[int](nil)
}

func TestBiPredicate_BothPositive(t *testing.T) {
	t.Parallel()

	bothPositive := NamedBi("both_positive", func(a, b int) bool { return a > 0 && b > 0 })
	assert.True(t, bothPositive.Test(5, 3))
	assert.False(t, bothPositive.Test(-5, 3))
	assert.True(t, bothPositive.Not().Test(-5, 3))

	sumEven := OfBi(func(a, b int) bool { return (a+b)%2 == 0 })
	assert.True(t, bothPositive.And(sumEven).Test(5, 3))
	assert.False(t, bothPositive.And(sumEven).Test(5, 4))
	assert.True(t, sumEven.Or(bothPositive).Test(5, 4))
	assert.Equal(t, "BiPredicate(both_positive)", bothPositive.String())
}
