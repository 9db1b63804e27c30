// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

type scaleKind uint8

const (
	scaleNone scaleKind = iota
	scaleFixed
	scaleAuto
)

// Scale selects how floating-point amplitudes are divided before they are
// mapped onto the integer range. The zero value is NoScale.
type Scale struct {
	kind  scaleKind
	value float64
}

var (
	// NoScale maps [-1, 1] onto the full output range.
	NoScale = Scale{}

	// AutoScale picks the scale from the data so that its most extreme
	// sample lands exactly on the edge of the output range.
	AutoScale = Scale{kind: scaleAuto}
)

// FixedScale maps [-v, v] onto the full output range.
func FixedScale(v float64) Scale {
	return Scale{kind: scaleFixed, value: v}
}

// ParseScale accepts "auto", "none", an empty string, or a positive number.
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoScale, nil
	case "auto":
		return AutoScale, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NoScale, fmt.Errorf("parsing scale %q: %w", s, err)
	}

	if err := checkScale(v); err != nil {
		return NoScale, err
	}

	return FixedScale(v), nil
}

func (s Scale) IsNone() bool { return s.kind == scaleNone }
func (s Scale) IsAuto() bool { return s.kind == scaleAuto }

// Value returns the fixed scale, if s is one.
func (s Scale) Value() (float64, bool) {
	return s.value, s.kind == scaleFixed
}

func (s Scale) String() string {
	switch s.kind {
	case scaleAuto:
		return "auto"
	case scaleFixed:
		return strconv.FormatFloat(s.value, 'g', -1, 64)
	default:
		return "none"
	}
}

// ResolveScale returns the numeric scale FloatToInt would use for x.
func ResolveScale[T Float](x Matrix[T], width Width, s Scale) (float64, error) {
	if !width.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWidth, int(width))
	}
	vals := toFloat64s(x.data)
	if floats.HasNaN(vals) {
		return 0, fmt.Errorf("%w: NaN sample", ErrDomain)
	}

	return resolveScale(vals, width, s)
}

func resolveScale(x []float64, width Width, s Scale) (float64, error) {
	switch s.kind {
	case scaleFixed:
		if err := checkScale(s.value); err != nil {
			return 0, err
		}
		return s.value, nil
	case scaleAuto:
		return autoScale(x, width)
	default:
		return 1, nil
	}
}

// autoScale accounts for the extra negative integer of two's complement:
// the largest negative magnitude is divided by 1 + 1/c so that it reaches
// the bottom of the range while the largest positive value reaches the top.
func autoScale(x []float64, width Width) (float64, error) {
	if len(x) == 0 {
		return 1, nil
	}

	c := width.halfRange()
	pos := math.Max(floats.Max(x), 0)
	neg := math.Max(-floats.Min(x), 0)

	scale := math.Max(pos, neg/(1+1/c))
	if math.IsInf(scale, 0) {
		return 0, fmt.Errorf("%w: automatic scale of infinite data", ErrDomain)
	}

	// all-zero input
	if scale == 0 {
		return 1, nil
	}

	return scale, nil
}

func checkScale(v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: scale must be a positive finite number, got %v", ErrDomain, v)
	}
	return nil
}

func toFloat64s[T Float](x []T) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
