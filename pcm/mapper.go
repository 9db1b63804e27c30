// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/wavio/utils"
)

// FloatToInt maps floating-point amplitudes into the integer domain of width.
//
// Each sample is divided by the resolved scale, multiplied by
// c = 2^(bits-1) - 0.5, rounded with halves going towards zero and shifted
// to the width's midpoint (128 for 8-bit, 0 otherwise). With scale s the
// inputs that survive without clipping are [-(1+1/c)*s, s]. Anything outside
// is reported according to clip and then clamped.
//
// A nil logger discards ClipWarn notifications.
func FloatToInt[T Float](x Matrix[T], width Width, scale Scale, clip ClipPolicy, logger *zap.Logger) (Matrix[int32], error) {
	if err := clip.Validate(); err != nil {
		return Matrix[int32]{}, err
	}

	if !width.Valid() {
		return Matrix[int32]{}, fmt.Errorf("%w: got %d", ErrInvalidWidth, int(width))
	}

	vals := toFloat64s(x.data)
	if floats.HasNaN(vals) {
		return Matrix[int32]{}, fmt.Errorf("%w: NaN sample", ErrDomain)
	}

	s, err := resolveScale(vals, width, scale)
	if err != nil {
		return Matrix[int32]{}, err
	}

	c := width.halfRange()
	floor := -1 - 1/c

	clipped := false
	for i, v := range vals {
		sv := v / s
		if sv > 1 || sv < floor {
			clipped = true
		}
		vals[i] = sv
	}

	if clipped {
		low := floor * s
		detail := fmt.Sprintf("with scale=%v, the interval of input values that will not be clipped is [%v, %v]", s, low, s)
		if err := clip.report(logger, detail,
			zap.Float64("scale", s),
			zap.Float64("low", low),
			zap.Float64("high", s),
		); err != nil {
			return Matrix[int32]{}, err
		}
	}

	lo, hi := width.Domain()
	mid := float64(width.Midpoint())
	out := make([]int32, len(vals))
	for i, sv := range vals {
		// product rounded to float64 before the tie test, never fused
		y := mid + utils.RoundHalfTowardsZero(float64(sv*c))
		out[i] = int32(utils.Clamp(y, float64(lo), float64(hi)))
	}

	return Matrix[int32]{data: out, channels: x.channels}, nil
}
