// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavio/pcm"
)

// FromIntBuffer converts a go-audio buffer holding WAV-convention samples
// (8-bit unsigned, wider widths signed) into a matrix. The width comes from
// buf.SourceBitDepth. Values outside that width's domain are rejected with
// pcm.ErrClippedData.
func FromIntBuffer(buf *goaudio.IntBuffer) (pcm.Matrix[int32], pcm.Width, error) {
	if buf == nil || buf.Format == nil {
		return pcm.Matrix[int32]{}, 0, ErrMissingFormat
	}

	width, err := pcm.WidthFromBits(buf.SourceBitDepth)
	if err != nil {
		return pcm.Matrix[int32]{}, 0, err
	}

	m, err := pcm.NewMatrix(buf.Data, buf.Format.NumChannels)
	if err != nil {
		return pcm.Matrix[int32]{}, 0, err
	}

	out, err := pcm.ClampInts(m, width, pcm.ClipRaise, nil)
	if err != nil {
		return pcm.Matrix[int32]{}, 0, fmt.Errorf("int buffer: %w", err)
	}

	return out, width, nil
}

// ToIntBuffer exposes m as a go-audio buffer of the given width and rate.
func ToIntBuffer(m pcm.Matrix[int32], width pcm.Width, rate int) *goaudio.IntBuffer {
	data := make([]int, m.Len())
	for i, v := range m.Samples() {
		data[i] = int(v)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: m.Channels(),
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: width.Bits(),
	}
}
