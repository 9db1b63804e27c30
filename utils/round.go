// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"cmp"
	"math"
)

// RoundHalfTowardsZero rounds x to the nearest integer, sending exact
// halves towards zero: 1.5 -> 1, -2.5 -> -2.
func RoundHalfTowardsZero(x float64) float64 {
	return math.Copysign(math.Ceil(math.Abs(x)-0.5), x)
}

// Clamp limits x to [lo, hi].
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return max(lo, min(x, hi))
}
