package mission

import "math/rand/v2"

// Source yields uniform indexes in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// GlobalSource draws from the process-wide math/rand/v2 generator and is safe
// for concurrent use.
var GlobalSource Source = globalSource{}

// Pick returns a uniformly random element of items, or the zero value when
// items is empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	switch len(items) {
	case 0:
		return zero
	case 1:
		return items[0]
	}
	if src == nil {
		src = GlobalSource
	}
	return items[src.IntN(len(items))]
}
