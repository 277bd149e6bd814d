package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// RandInt returns a value in [min, max]. An empty range yields min.
func RandInt[T constraints.Integer](r *rand.Rand, min T, max T) T {
	if max <= min {
		return min
	}
	return T(r.Int63n(int64(max-min)+1)) + min
}

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
