// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
)

// Decode unpacks the payload of a WAV data chunk into a frames by channels
// matrix.
//
// 8-bit samples keep their unsigned value in [0, 255]. 24-bit samples are
// sign-extended into the int32 container, so -1 decodes as -1 and not as
// 16777215.
func Decode(channels int, width Width, raw []byte) (Matrix[int32], error) {
	if channels <= 0 {
		return Matrix[int32]{}, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	if !width.Valid() {
		return Matrix[int32]{}, fmt.Errorf("%w: got %d", ErrInvalidWidth, int(width))
	}

	frameSize := int(width) * channels
	if len(raw)%frameSize != 0 {
		return Matrix[int32]{}, fmt.Errorf("%w: %d bytes, frame size %d", ErrFormat, len(raw), frameSize)
	}

	data := make([]int32, len(raw)/int(width))

	switch width {
	case Width8:
		for i, b := range raw {
			data[i] = int32(b)
		}
	case Width16:
		for i := range data {
			data[i] = int32(int16(binary.LittleEndian.Uint16(raw[2*i:])))
		}
	case Width24:
		var word [4]byte
		for i := range data {
			copy(word[:3], raw[3*i:3*i+3])
			word[3] = signFill(word[2])
			data[i] = int32(binary.LittleEndian.Uint32(word[:]))
		}
	case Width32:
		for i := range data {
			data[i] = int32(binary.LittleEndian.Uint32(raw[4*i:]))
		}
	}

	return Matrix[int32]{data: data, channels: channels}, nil
}

// signFill returns the high byte that sign-extends a 24-bit sample whose
// most significant byte is msb.
func signFill(msb byte) byte {
	return (msb >> 7) * 0xFF
}

// Encode packs m into little-endian PCM bytes of the given width.
//
// Values must already lie in width's domain (see FloatToInt and ClampInts);
// Encode only slices bits. For 24-bit output the top byte of each int32 is
// dropped.
func Encode(m Matrix[int32], width Width) ([]byte, error) {
	if !width.Valid() {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, int(width))
	}

	out := make([]byte, len(m.data)*int(width))

	switch width {
	case Width8:
		for i, v := range m.data {
			out[i] = uint8(v)
		}
	case Width16:
		for i, v := range m.data {
			binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(v)))
		}
	case Width24:
		for i, v := range m.data {
			o := out[3*i : 3*i+3]
			o[0] = byte(v & 0xFF)
			o[1] = byte((v >> 8) & 0xFF)
			o[2] = byte((v >> 16) & 0xFF)
		}
	case Width32:
		for i, v := range m.data {
			binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
		}
	}

	return out, nil
}
