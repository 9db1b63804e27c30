// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	data         []byte // 16-bit little-endian stereo PCM
	offset       int
	maxRead      int // bytes per Read call, 0 means unlimited
	returnErrors bool
}

func newMockReader(rate int, samples ...int16) *mockMP3Reader {
	data := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(v))
	}
	return &mockMP3Reader{sampleRate: rate, data: data}
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.data) {
		return 0, io.EOF
	}

	n := len(buf)
	if m.maxRead > 0 && n > m.maxRead {
		n = m.maxRead
	}
	n = copy(buf[:n], m.data[m.offset:])
	m.offset += n

	if m.offset >= len(m.data) {
		return n, io.EOF
	}

	return n, nil
}

func newTestSource(dec mp3Reader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), buf: make([]byte, 8192)}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not MP3 data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(44100, make([]int16, 100)...))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(8000, 0, 16384, 32767, -16384, -32768, 8192, -8192, 0))

	dst := make([]float64, 8)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}

	expected := []float64{0, 0.5, 32767.0 / 32768.0, -0.5, -1, 0.25, -0.25, 0}
	for i := range n {
		if dst[i] != expected[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mock := newMockReader(8000, 1, 2)
	src := newTestSource(mock)

	for _, size := range []int{0, 1} {
		n, err := src.ReadSamples(make([]float64, size))
		if n != 0 || err != nil {
			t.Errorf("ReadSamples(len %d) = (%d, %v), want (0, nil)", size, n, err)
		}
	}

	if mock.offset != 0 {
		t.Errorf("decoder consumed %d bytes for an empty read", mock.offset)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(8000, 100, 200))

	dst := make([]float64, 16)
	n, err := src.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	testSamples := make([]int16, 10)
	for i := range testSamples {
		testSamples[i] = int16(i * 1000)
	}

	src := newTestSource(newMockReader(8000, testSamples...))

	dst := make([]float64, 4)
	want := []int{4, 4, 2}
	for i, w := range want {
		n, err := src.ReadSamples(dst)
		if err != nil && err != io.EOF {
			t.Fatalf("ReadSamples() #%d error = %v", i, err)
		}
		if n != w {
			t.Errorf("ReadSamples() #%d n = %d, want %d", i, n, w)
		}
	}
}

// Decoder reads that split a frame must carry the remainder into the
// next call.
func TestSource_ReadSamples_SplitFrames(t *testing.T) {
	t.Parallel()

	testSamples := []int16{1000, -1000, 2000, -2000, 3000, -3000}
	mock := newMockReader(8000, testSamples...)
	mock.maxRead = 5
	src := newTestSource(mock)

	var got []float64
	dst := make([]float64, 64)
	for range 20 {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() returned %d samples, want whole frames", n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(testSamples) {
		t.Fatalf("read %d samples, want %d", len(got), len(testSamples))
	}
	for i, v := range testSamples {
		if want := float64(v) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_TrailingPartialFrame(t *testing.T) {
	t.Parallel()

	mock := newMockReader(8000, 10, 20, 30)
	src := newTestSource(mock)

	n, err := src.ReadSamples(make([]float64, 8))
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	mock := newMockReader(8000, 1, 2)
	mock.returnErrors = true
	src := newTestSource(mock)

	n, err := src.ReadSamples(make([]float64, 4))
	if n != 0 {
		t.Errorf("ReadSamples() n = %d, want 0", n)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufferResize(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 10000)
	for i := range samples {
		samples[i] = int16(i)
	}

	src := &source{dec: newMockReader(8000, samples...), sampleRate: 8000, buf: make([]byte, 16)}

	dst := make([]float64, 10000)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10000 {
		t.Errorf("ReadSamples() n = %d, want 10000", n)
	}
	if cap(src.buf) < 20000 {
		t.Errorf("buffer capacity = %d, want at least 20000", cap(src.buf))
	}
	if math.Abs(dst[9999]-9999.0/32768) > 1e-12 {
		t.Errorf("dst[9999] = %v, want %v", dst[9999], 9999.0/32768)
	}
}

func TestSource_StereoInterleaving(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockReader(8000, 16384, -16384, 8192, -8192))

	dst := make([]float64, 4)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i := 0; i < len(dst); i += 2 {
		if dst[i] <= 0 {
			t.Errorf("left sample %d = %v, want positive", i/2, dst[i])
		}
		if dst[i+1] >= 0 {
			t.Errorf("right sample %d = %v, want negative", i/2, dst[i+1])
		}
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*10)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	mock := newMockReader(44100, samples...)
	src := newTestSource(mock)
	dst := make([]float64, 4096)

	b.ReportAllocs()

	for b.Loop() {
		mock.offset = 0
		_, _ = src.ReadSamples(dst)
	}
}
