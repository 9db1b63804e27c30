// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/pcm"
)

// go-mp3 always emits interleaved stereo 16-bit little-endian PCM.
const (
	channels  = 2
	frameSize = channels * int(pcm.Width16)
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	pending    int // bytes of an incomplete frame kept at the start of buf
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float64) (int, error) {
	frames := len(dst) / channels
	if frames == 0 {
		return 0, nil
	}

	need := frames * frameSize
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.pending])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.pending:])
	avail := s.pending + n
	whole := avail - avail%frameSize

	samples := 0
	if whole > 0 {
		m, derr := pcm.Decode(channels, pcm.Width16, s.buf[:whole])
		if derr != nil {
			return 0, fmt.Errorf("mp3: %w", derr)
		}
		for i, v := range m.Samples() {
			dst[i] = pcm.Width16.Normalize(v)
		}
		samples = m.Len()
	}
	s.pending = copy(s.buf, s.buf[whole:avail])

	return samples, err
}

// Decoder decodes MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
