// SPDX-License-Identifier: EPL-2.0

package wavio

import (
	"fmt"
	"io"
	"os"
	"reflect"

	goaudio "github.com/go-audio/audio"
	"go.uber.org/zap"

	"github.com/ik5/wavio/audio"
	"github.com/ik5/wavio/formats/wav"
	"github.com/ik5/wavio/pcm"
)

// Wav is the content of an uncompressed PCM WAV file.
type Wav struct {
	// Data holds the samples as stored: 8-bit data is unsigned and centred
	// on 128, wider data is signed.
	Data        pcm.Matrix[int32]
	Rate        int
	SampleWidth pcm.Width
}

func (w *Wav) String() string {
	return fmt.Sprintf("Wav(frames=%d, channels=%d, rate=%d, sampwidth=%d)",
		w.Data.Frames(), w.Data.Channels(), w.Rate, int(w.SampleWidth))
}

// Header describes w the way the container stores it.
func (w *Wav) Header() wav.Header {
	return wav.Header{
		Channels:    w.Data.Channels(),
		SampleWidth: w.SampleWidth,
		FrameRate:   w.Rate,
		FrameCount:  w.Data.Frames(),
	}
}

// IntBuffer exposes w as a go-audio buffer.
func (w *Wav) IntBuffer() *goaudio.IntBuffer {
	return audio.ToIntBuffer(w.Data, w.SampleWidth, w.Rate)
}

// FromIntBuffer builds a Wav from a go-audio buffer holding WAV-convention
// samples.
func FromIntBuffer(buf *goaudio.IntBuffer) (*Wav, error) {
	data, width, err := audio.FromIntBuffer(buf)
	if err != nil {
		return nil, err
	}
	return &Wav{Data: data, Rate: buf.Format.SampleRate, SampleWidth: width}, nil
}

// Read decodes a WAV stream.
func Read(r io.ReadSeeker) (*Wav, error) {
	h, raw, err := wav.ReadPCM(r)
	if err != nil {
		return nil, err
	}

	data, err := pcm.Decode(h.Channels, h.SampleWidth, raw)
	if err != nil {
		return nil, fmt.Errorf("decoding data chunk: %w", err)
	}

	return &Wav{Data: data, Rate: h.FrameRate, SampleWidth: h.SampleWidth}, nil
}

func ReadFile(path string) (*Wav, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return w, nil
}

// Options controls how sample data is converted before it is written.
// The zero value applies no scale, infers the width from the element type,
// warns on clipping and discards log output.
type Options struct {
	// Scale applies to floating-point input only.
	Scale pcm.Scale
	// SampleWidth is the output width. Zero infers it from the element type.
	SampleWidth pcm.Width
	Clip        pcm.ClipPolicy
	Logger      *zap.Logger
}

// Prepare converts data into integer samples of the output width.
//
// Floating-point data goes through the amplitude mapper, integer data
// through the range clipper. Either way the result lies inside the width's
// domain and is ready for pcm.Encode.
func Prepare[T pcm.Sample](data pcm.Matrix[T], opts Options) (pcm.Matrix[int32], pcm.Width, error) {
	if err := opts.Clip.Validate(); err != nil {
		return pcm.Matrix[int32]{}, 0, err
	}

	kind := reflect.TypeFor[T]().Kind()

	width := opts.SampleWidth
	if width == 0 {
		var err error
		if width, err = inferWidth(kind, reflect.TypeFor[T]().Size()); err != nil {
			return pcm.Matrix[int32]{}, 0, err
		}
	} else if !width.Valid() {
		return pcm.Matrix[int32]{}, 0, fmt.Errorf("%w: got %d", pcm.ErrInvalidWidth, int(width))
	}

	var (
		out pcm.Matrix[int32]
		err error
	)

	switch {
	case isFloat(kind):
		out, err = pcm.FloatToInt(pcm.Convert[float64](data), width, opts.Scale, opts.Clip, opts.Logger)
	case !opts.Scale.IsNone():
		return pcm.Matrix[int32]{}, 0, fmt.Errorf("%w: got %s", pcm.ErrScaleWithInteger, opts.Scale)
	case isUnsigned(kind):
		out, err = pcm.ClampInts(pcm.Widen(pcm.Convert[uint64](data)), width, opts.Clip, opts.Logger)
	default:
		out, err = pcm.ClampInts(pcm.Convert[int64](data), width, opts.Clip, opts.Logger)
	}
	if err != nil {
		return pcm.Matrix[int32]{}, 0, err
	}

	return out, width, nil
}

// inferWidth maps an integer element type of 1, 2 or 4 bytes onto the
// width of the same size. 24-bit output always needs an explicit width.
func inferWidth(kind reflect.Kind, size uintptr) (pcm.Width, error) {
	if isFloat(kind) {
		return 0, fmt.Errorf("%w: floating-point data", pcm.ErrMissingWidth)
	}

	switch size {
	case 1:
		return pcm.Width8, nil
	case 2:
		return pcm.Width16, nil
	case 4:
		return pcm.Width32, nil
	}
	return 0, fmt.Errorf("%w: %d-byte %s data", pcm.ErrMissingWidth, size, kind)
}

func isFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// encode prepares data and packs it for the container. Nothing is written
// until every check has passed.
func encode[T pcm.Sample](data pcm.Matrix[T], rate int, opts Options) (wav.Header, []byte, error) {
	ints, width, err := Prepare(data, opts)
	if err != nil {
		return wav.Header{}, nil, err
	}

	h := wav.Header{
		Channels:    ints.Channels(),
		SampleWidth: width,
		FrameRate:   rate,
		FrameCount:  ints.Frames(),
	}
	if err := h.Validate(); err != nil {
		return wav.Header{}, nil, err
	}

	raw, err := pcm.Encode(ints, width)
	if err != nil {
		return wav.Header{}, nil, err
	}

	return h, raw, nil
}

// Write converts data according to opts and writes it to w as a WAV
// stream with the given frame rate.
func Write[T pcm.Sample](w io.Writer, data pcm.Matrix[T], rate int, opts Options) error {
	h, raw, err := encode(data, rate, opts)
	if err != nil {
		return err
	}
	return wav.WritePCM(w, h, raw)
}

// WriteFile is Write to a file. The file is created only once the data
// has been converted, and is removed again if writing it fails.
func WriteFile[T pcm.Sample](path string, data pcm.Matrix[T], rate int, opts Options) error {
	h, raw, err := encode(data, rate, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.WritePCM(f, h, raw); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("wrote wav file",
			zap.String("path", path),
			zap.Stringer("header", h),
		)
	}

	return nil
}
