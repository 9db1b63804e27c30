// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavio/pcm"
)

const maxEmptyReads = 100

// ReadAll drains src into a frames by channels matrix. bufSize is the
// number of samples requested per read; it is rounded down to whole frames.
//
// The source is not closed.
func ReadAll(src Source, bufSize int) (pcm.Matrix[float64], error) {
	channels := src.Channels()
	if channels <= 0 {
		return pcm.Matrix[float64]{}, fmt.Errorf("%w: got %d", pcm.ErrInvalidChannels, channels)
	}

	bufSize -= bufSize % channels
	if bufSize <= 0 {
		bufSize = channels
	}

	buf := make([]float64, bufSize)
	var out []float64
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return pcm.Matrix[float64]{}, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return pcm.Matrix[float64]{}, io.ErrNoProgress
		}
	}

	if len(out)%channels != 0 {
		return pcm.Matrix[float64]{}, fmt.Errorf("%w: %d samples for %d channels", ErrInvalidDstSize, len(out), channels)
	}

	return pcm.NewMatrix(out, channels)
}
