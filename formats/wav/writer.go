// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/wavio/pcm"
)

const (
	headerSize = 44
	chunkSize  = 8192
)

// WritePCM writes a canonical 44-byte PCM WAV header followed by data.
//
// data must hold whole frames of h.Channels samples of h.SampleWidth bytes.
// h.FrameCount is ignored; the frame count is taken from len(data).
func WritePCM(w io.Writer, h Header, data []byte) error {
	if err := h.Validate(); err != nil {
		return err
	}

	blockAlign := h.BlockAlign()
	if len(data)%blockAlign != 0 {
		return fmt.Errorf("%w: %d bytes, frame size %d", pcm.ErrFormat, len(data), blockAlign)
	}

	// RIFF chunks are word aligned
	pad := len(data) & 1
	if uint64(len(data))+uint64(pad)+headerSize-8 > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrDataTooLarge, len(data))
	}

	dataSize := uint32(len(data))
	riffSize := headerSize - 8 + dataSize + uint32(pad)

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(h.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(h.FrameRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(h.FrameRate*blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], uint16(h.SampleWidth.Bits()))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 0; i < len(data); i += chunkSize {
		end := min(i+chunkSize, len(data))
		if _, err := w.Write(data[i:end]); err != nil {
			return fmt.Errorf("writing data chunk: %w", err)
		}
	}

	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("writing pad byte: %w", err)
		}
	}

	return nil
}
