// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF audio into an audio.Source.
//
// Parsing is done by github.com/go-audio/aiff. 8, 16, 24 and 32-bit
// samples are supported; other sample sizes fail with
// ErrUnsupportedBitDepth.
//
// AIFF stores every width, 8-bit included, as signed big-endian integers,
// so samples are normalized by 2^(bits-1) with no midpoint shift. This
// differs from WAV, where 8-bit data is unsigned.
//
// go-audio needs an io.ReadSeeker. Decode reads any other io.Reader into
// memory first.
package aiff
