// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrFormat indicates a raw byte stream whose length is not a whole number of frames.
	ErrFormat = errors.New("length not a multiple of sample frame size")

	// ErrInvalidWidth indicates a sample width outside {1, 2, 3, 4}.
	ErrInvalidWidth = errors.New("sample width must be 1, 2, 3 or 4")

	// ErrMissingWidth indicates that the sample width was not given and
	// cannot be inferred from the element type.
	ErrMissingWidth = errors.New("sample width must be specified for non 8-, 16- or 32-bit integer data")

	// ErrScaleWithInteger indicates a scale was given for integer input.
	ErrScaleWithInteger = errors.New("scale must not be set for integer input")

	// ErrInvalidClipPolicy indicates a clip policy other than ignore, warn or raise.
	ErrInvalidClipPolicy = errors.New(`clip must be one of "ignore", "warn" or "raise"`)

	// ErrClippedData indicates that values would be clipped under ClipRaise.
	ErrClippedData = errors.New("some data values were clipped when converted to the output format")

	// ErrDomain indicates a scale or sample value that cannot be mapped.
	ErrDomain = errors.New("value outside the mappable domain")

	ErrRaggedMatrix    = errors.New("sample data is not rectangular")
	ErrInvalidChannels = errors.New("channel count must be positive")
)
