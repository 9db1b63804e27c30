// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"slices"
)

// Integer is the set of integer element types accepted as sample data.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating-point element types accepted as sample data.
type Float interface {
	~float32 | ~float64
}

type Sample interface {
	Integer | Float
}

// Matrix is a rectangular block of samples, frames by channels.
//
// Samples are stored interleaved, frame-major, which is the order PCM data
// takes inside a WAV data chunk. The frame and channel counts never change
// after construction, and a Matrix never shares its backing slice with the
// caller.
type Matrix[T Sample] struct {
	data     []T
	channels int
}

// NewMatrix builds a matrix from interleaved samples.
func NewMatrix[T Sample](samples []T, channels int) (Matrix[T], error) {
	if channels <= 0 {
		return Matrix[T]{}, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}

	if len(samples)%channels != 0 {
		return Matrix[T]{}, fmt.Errorf("%w: %d samples for %d channels", ErrRaggedMatrix, len(samples), channels)
	}

	return Matrix[T]{data: slices.Clone(samples), channels: channels}, nil
}

// Mono wraps one-dimensional data as a single-column matrix.
func Mono[T Sample](samples []T) Matrix[T] {
	return Matrix[T]{data: slices.Clone(samples), channels: 1}
}

// FromFrames builds a matrix from one slice per frame.
func FromFrames[T Sample](frames [][]T) (Matrix[T], error) {
	if len(frames) == 0 {
		return Matrix[T]{}, fmt.Errorf("%w: no frames to take the channel count from", ErrInvalidChannels)
	}

	channels := len(frames[0])
	if channels == 0 {
		return Matrix[T]{}, fmt.Errorf("%w: got 0", ErrInvalidChannels)
	}

	data := make([]T, 0, len(frames)*channels)
	for i, f := range frames {
		if len(f) != channels {
			return Matrix[T]{}, fmt.Errorf("%w: frame %d has %d channels, want %d", ErrRaggedMatrix, i, len(f), channels)
		}
		data = append(data, f...)
	}

	return Matrix[T]{data: data, channels: channels}, nil
}

// Convert returns a copy of m with every sample converted to U using Go's
// numeric conversion rules.
func Convert[U, T Sample](m Matrix[T]) Matrix[U] {
	out := make([]U, len(m.data))
	for i, v := range m.data {
		out[i] = U(v)
	}
	return Matrix[U]{data: out, channels: m.channels}
}

// Widen converts integer samples to int64. Unsigned values above
// math.MaxInt64 saturate instead of wrapping.
func Widen[T Integer](m Matrix[T]) Matrix[int64] {
	out := make([]int64, len(m.data))
	for i, v := range m.data {
		out[i] = saturate(v)
	}
	return Matrix[int64]{data: out, channels: m.channels}
}

func saturate[T Integer](v T) int64 {
	n := int64(v)
	if v > 0 && n < 0 {
		return 1<<63 - 1
	}
	return n
}

func (m Matrix[T]) Channels() int { return m.channels }

// Len is the total number of samples, frames times channels.
func (m Matrix[T]) Len() int { return len(m.data) }

func (m Matrix[T]) Frames() int {
	if m.channels == 0 {
		return 0
	}
	return len(m.data) / m.channels
}

// At returns the sample of channel ch in frame i.
func (m Matrix[T]) At(i, ch int) T {
	return m.data[i*m.channels+ch]
}

// Frame returns a copy of frame i.
func (m Matrix[T]) Frame(i int) []T {
	return slices.Clone(m.data[i*m.channels : (i+1)*m.channels])
}

// Column returns a copy of every sample of channel ch.
func (m Matrix[T]) Column(ch int) []T {
	out := make([]T, m.Frames())
	for i := range out {
		out[i] = m.data[i*m.channels+ch]
	}
	return out
}

// Samples returns a copy of the interleaved samples.
func (m Matrix[T]) Samples() []T {
	return slices.Clone(m.data)
}

// Rows returns the matrix as one slice per frame.
func (m Matrix[T]) Rows() [][]T {
	rows := make([][]T, m.Frames())
	for i := range rows {
		rows[i] = m.Frame(i)
	}
	return rows
}

func (m Matrix[T]) Equal(o Matrix[T]) bool {
	return m.channels == o.channels && slices.Equal(m.data, o.data)
}

func (m Matrix[T]) String() string {
	return fmt.Sprintf("Matrix(frames=%d, channels=%d)", m.Frames(), m.channels)
}
