// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/wavio/utils"
)

// ClampInts fits integer samples into the domain of width without any
// scaling or shifting. Out-of-range values are reported according to clip
// and then clamped.
//
// A nil logger discards ClipWarn notifications.
func ClampInts[T Integer](x Matrix[T], width Width, clip ClipPolicy, logger *zap.Logger) (Matrix[int32], error) {
	if err := clip.Validate(); err != nil {
		return Matrix[int32]{}, err
	}

	if !width.Valid() {
		return Matrix[int32]{}, fmt.Errorf("%w: got %d", ErrInvalidWidth, int(width))
	}

	lo, hi := width.Domain()
	out := make([]int32, len(x.data))
	clipped := false

	for i, v := range x.data {
		n := saturate(v)
		if n < lo || n > hi {
			clipped = true
		}
		out[i] = int32(utils.Clamp(n, lo, hi))
	}

	if clipped {
		detail := fmt.Sprintf("the interval of values that will not be clipped is [%d, %d]", lo, hi)
		if err := clip.report(logger, detail, zap.Int64("min", lo), zap.Int64("max", hi)); err != nil {
			return Matrix[int32]{}, err
		}
	}

	return Matrix[int32]{data: out, channels: x.channels}, nil
}
