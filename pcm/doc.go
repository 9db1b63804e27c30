// SPDX-License-Identifier: EPL-2.0

// Package pcm converts between sample matrices and the little-endian PCM
// bytes stored in a WAV data chunk.
//
// # Sample Widths
//
//	width  storage   domain
//	  1    unsigned  [0, 255]
//	  2    signed    [-32768, 32767]
//	  3    signed    [-8388608, 8388607]
//	  4    signed    [-2147483648, 2147483647]
//
// Decoded samples are always held in int32. A 24-bit sample is sign-extended
// into that container; its value range is still the 24-bit one.
//
// # Converting Samples
//
// Integer data is clamped into the output domain with ClampInts. Floating
// data is mapped with FloatToInt:
//
//	m := pcm.Mono([]float64{-1, 0, 0.5, 1})
//	ints, err := pcm.FloatToInt(m, pcm.Width16, pcm.NoScale, pcm.ClipRaise, nil)
//	// ints holds -32767, 0, 16384, 32767
//
//	raw, err := pcm.Encode(ints, pcm.Width16)
//	back, err := pcm.Decode(1, pcm.Width16, raw)
//
// # Scale
//
// NoScale treats the input as lying in [-1, 1]. FixedScale(s) treats it as
// lying in [-s, s]. AutoScale stretches the data so its most extreme sample
// reaches the edge of the output range.
//
// # Clipping
//
// ClipWarn (the default) logs a zap warning, ClipIgnore is silent and
// ClipRaise returns ErrClippedData before any output is produced.
package pcm
