package core

import (
	"log/slog"

	"github.com/ib-77/fnwrap/pkg/fnwrap"
	"github.com/samber/lo"
)

// MustTake takes the callable out of c or panics with *fnwrap.ConsumedError.
func MustTake[F any](c *Cell[F], kind string, m fnwrap.Meta, opts fnwrap.Options) F {
	fn, err := TryTake(c, kind, m, opts)
	if err != nil {
		panic(err)
	}
	return fn
}

// TryTake is the non-panicking form of MustTake.
func TryTake[F any](c *Cell[F], kind string, m fnwrap.Meta, opts fnwrap.Options) (F, error) {
	fn, ok := c.Take()
	if !ok {
		opts.Log().Debug("rejected use of consumed callable",
			slog.String("kind", kind),
			slog.String("wrapper", m.Token()))
		return fn, &fnwrap.ConsumedError{Kind: kind, Name: m.Token()}
	}
	return fn, nil
}

// Guards flattens and de-duplicates the guards of composed Sync wrappers.
func Guards(sets ...[]*Guard) []*Guard {
	return lo.Uniq(lo.Flatten(sets))
}

// AnyPoisoned reports whether any of guards is poisoned.
func AnyPoisoned(guards []*Guard) bool {
	return lo.SomeBy(guards, (*Guard).Poisoned)
}

// ClearAll lifts the poison on every guard.
func ClearAll(guards []*Guard) {
	lo.ForEach(guards, func(g *Guard, _ int) { g.Clear() })
}
