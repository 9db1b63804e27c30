// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"
	"time"

	"github.com/ik5/wavio/pcm"
)

// Header describes the PCM stream of a WAV file.
type Header struct {
	Channels    int
	SampleWidth pcm.Width
	FrameRate   int
	// FrameCount is the number of frames the data chunk declares. It is
	// informational only when writing: the payload length decides.
	FrameCount int
}

// BlockAlign is the size in bytes of one frame.
func (h Header) BlockAlign() int {
	return h.Channels * int(h.SampleWidth)
}

func (h Header) Duration() time.Duration {
	if h.FrameRate <= 0 {
		return 0
	}
	return time.Duration(h.FrameCount) * time.Second / time.Duration(h.FrameRate)
}

// Validate checks that h can be stored in a canonical PCM fmt chunk.
func (h Header) Validate() error {
	if h.Channels <= 0 || h.Channels > math.MaxUint16 {
		return fmt.Errorf("%w: got %d", pcm.ErrInvalidChannels, h.Channels)
	}

	if !h.SampleWidth.Valid() {
		return fmt.Errorf("%w: got %d", pcm.ErrInvalidWidth, int(h.SampleWidth))
	}

	if h.FrameRate <= 0 || uint64(h.FrameRate) > math.MaxUint32 {
		return fmt.Errorf("%w: got %d", ErrInvalidFrameRate, h.FrameRate)
	}

	if uint64(h.FrameRate)*uint64(h.BlockAlign()) > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate of %d Hz x %d bytes overflows", ErrInvalidFrameRate, h.FrameRate, h.BlockAlign())
	}

	return nil
}

func (h Header) String() string {
	return fmt.Sprintf("%d ch, %s, %d Hz, %d frames", h.Channels, h.SampleWidth, h.FrameRate, h.FrameCount)
}
