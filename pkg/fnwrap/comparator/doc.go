// Package comparator wraps orderings: func(a, b T) int, negative when a
// sorts before b, zero when they tie, positive otherwise. A Comparator can
// be passed to slices.SortFunc through ToFunc.
package comparator
