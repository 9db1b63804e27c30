// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/pcm"
)

type wavSource struct {
	r      io.Reader
	header Header
	buf    []byte
}

func (s *wavSource) SampleRate() int { return s.header.FrameRate }
func (s *wavSource) Channels() int   { return s.header.Channels }
func (s *wavSource) Close() error    { return nil }

// Header reports the fmt chunk the source was opened with.
func (s *wavSource) Header() Header { return s.header }

func (s *wavSource) ReadSamples(dst []float64) (int, error) {
	width := s.header.SampleWidth
	want := len(dst) * int(width)
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	buf := s.buf[:want]

	n, err := io.ReadFull(s.r, buf)

	// a trailing partial sample is dropped
	samples := n / int(width)
	if samples > 0 {
		m, derr := pcm.Decode(1, width, buf[:samples*int(width)])
		if derr != nil {
			return 0, derr
		}
		for i := range samples {
			dst[i] = width.Normalize(m.At(i, 0))
		}
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		if samples == 0 {
			return 0, io.EOF
		}
		return samples, nil
	default:
		return samples, fmt.Errorf("reading data chunk: %w", err)
	}
}

// Decoder opens PCM WAV streams of any supported width as an audio.Source.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(raw)
	}

	h, payload, err := openPCM(rs)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		r:      payload,
		header: h,
		buf:    make([]byte, 4096),
	}, nil
}
