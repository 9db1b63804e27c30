// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavio/pcm"
)

const formatPCM = 1

// ReadPCM parses the RIFF/WAVE container in r and returns its fmt chunk
// description along with the raw data chunk payload.
//
// The payload is returned exactly as stored. A file cut short inside the
// data chunk yields the bytes that are present, which may not be a whole
// number of frames.
func ReadPCM(r io.ReadSeeker) (Header, []byte, error) {
	h, payload, err := openPCM(r)
	if err != nil {
		return Header{}, nil, err
	}

	data, err := io.ReadAll(payload)
	if err != nil {
		return Header{}, nil, fmt.Errorf("reading data chunk: %w", err)
	}

	return h, data, nil
}

// openPCM leaves r positioned at the start of the data chunk payload and
// returns a reader limited to that payload.
func openPCM(r io.ReadSeeker) (Header, io.Reader, error) {
	if err := checkMagic(r); err != nil {
		return Header{}, nil, err
	}

	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.NumChans == 0 {
		return Header{}, nil, fmt.Errorf("%w: no fmt chunk", ErrUnsupportedWavLayout)
	}

	if dec.WavAudioFormat != formatPCM {
		return Header{}, nil, fmt.Errorf("%w: format tag %#04x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	// containers such as 12-bit audio round up to whole bytes
	width := pcm.Width((int(dec.BitDepth) + 7) / 8)
	if !width.Valid() {
		return Header{}, nil, fmt.Errorf("%w: %d bits per sample", pcm.ErrInvalidWidth, dec.BitDepth)
	}

	// the chunk walker flattens io.EOF into its message, so any failure
	// past a good fmt chunk means the data chunk was never reached
	if err := dec.FwdToPCM(); err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", ErrMissingDataChunk, err)
	}

	if dec.PCMChunk == nil {
		return Header{}, nil, ErrMissingDataChunk
	}

	size, err := declaredSize(r)
	if err != nil {
		return Header{}, nil, err
	}

	h := Header{
		Channels:    int(dec.NumChans),
		SampleWidth: width,
		FrameRate:   int(dec.SampleRate),
	}
	h.FrameCount = int(size) / h.BlockAlign()

	return h, io.LimitReader(r, size), nil
}

// declaredSize re-reads the size field of the data chunk header that ends at
// the current offset of r. The RIFF parser rounds odd chunk sizes up to
// include the pad byte, which is not part of the payload.
func declaredSize(r io.ReadSeeker) (int64, error) {
	if _, err := r.Seek(-4, io.SeekCurrent); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	var field [4]byte
	if _, err := io.ReadFull(r, field[:]); err != nil {
		return 0, fmt.Errorf("reading data chunk size: %w", err)
	}

	return int64(binary.LittleEndian.Uint32(field[:])), nil
}

// checkMagic verifies the RIFF/WAVE preamble and rewinds r to where it was.
func checkMagic(r io.ReadSeeker) error {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	preamble := make([]byte, 12)
	if _, err := io.ReadFull(r, preamble); err != nil {
		return ErrNotWavFile
	}

	if !bytes.HasPrefix(preamble[:4], []byte("RIFF")) || !bytes.HasPrefix(preamble[8:12], []byte("WAVE")) {
		return ErrNotWavFile
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
