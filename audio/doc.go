// SPDX-License-Identifier: EPL-2.0

// Package audio connects format decoders to the sample matrices of package
// pcm.
//
//   - Source interface for decoded audio input
//   - Format registry for decoder registration
//   - ReadAll to drain a Source into a pcm.Matrix
//   - go-audio IntBuffer interop
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float64 values normalized to [-1, 1], which is
// the input the amplitude mapper in package pcm expects with no scale.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode("wav", file)
//
// The registry is safe for concurrent use.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. ReadAll treats it
// as the normal end of input:
//
//	m, err := audio.ReadAll(src, 4096)
//	ints, err := pcm.FloatToInt(m, pcm.Width16, pcm.NoScale, pcm.ClipWarn, logger)
package audio
