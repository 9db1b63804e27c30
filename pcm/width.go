// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"math"
)

// Width is the number of bytes used by one single-channel sample.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
	Width24 Width = 3
	Width32 Width = 4
)

// WidthFromBits converts a container bit depth into a Width.
func WidthFromBits(bits int) (Width, error) {
	if bits%8 != 0 {
		return 0, fmt.Errorf("%w: %d bits is not a whole number of bytes", ErrInvalidWidth, bits)
	}

	w := Width(bits / 8)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: got %d bits", ErrInvalidWidth, bits)
	}

	return w, nil
}

func (w Width) Valid() bool { return w >= Width8 && w <= Width32 }
func (w Width) Bits() int   { return int(w) * 8 }

// Signed reports whether samples of this width are stored as signed integers.
// Only 8-bit PCM is unsigned.
func (w Width) Signed() bool { return w != Width8 }

// Domain returns the inclusive range of integers representable at w.
func (w Width) Domain() (lo, hi int64) {
	switch w {
	case Width8:
		return 0, math.MaxUint8
	case Width16:
		return math.MinInt16, math.MaxInt16
	case Width24:
		return -1 << 23, 1<<23 - 1
	case Width32:
		return math.MinInt32, math.MaxInt32
	default:
		return 0, 0
	}
}

// Midpoint is the integer that represents silence.
func (w Width) Midpoint() int64 {
	if w == Width8 {
		return 128
	}
	return 0
}

// Normalize maps a sample of this width onto [-1, 1).
func (w Width) Normalize(v int32) float64 {
	return float64(int64(v)-w.Midpoint()) / math.Ldexp(1, w.Bits()-1)
}

// halfRange is 2^(bits-1) - 0.5, the multiplier applied to scaled
// floating-point amplitudes.
func (w Width) halfRange() float64 {
	return math.Ldexp(1, w.Bits()-1) - 0.5
}

func (w Width) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Width(%d)", int(w))
	}
	return fmt.Sprintf("%d-bit", w.Bits())
}
