// SPDX-License-Identifier: EPL-2.0

// Package wavio reads and writes uncompressed PCM WAV files as sample
// matrices.
//
// Data is held as a pcm.Matrix: frames by channels, stored interleaved.
// Sample widths of 1, 2, 3 and 4 bytes are supported. 8-bit data is
// unsigned with silence at 128, wider data is signed.
//
// # Reading
//
//	w, err := wavio.ReadFile("in.wav")
//	fmt.Println(w) // Wav(frames=..., channels=..., rate=..., sampwidth=...)
//
// The samples come back exactly as stored, in a pcm.Matrix[int32].
//
// # Writing
//
// Write and WriteFile accept any integer or floating-point matrix:
//
//	tone := pcm.Mono([]float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -0.5})
//	err := wavio.WriteFile("out.wav", tone, 8000, wavio.Options{
//	    SampleWidth: pcm.Width24,
//	    Scale:       pcm.AutoScale,
//	    Clip:        pcm.ClipRaise,
//	})
//
// Floating-point data is mapped onto the integer range of the output width
// by the amplitude mapper in package pcm. With no scale, [-1, 1] covers the
// whole range; a fixed scale s covers [-s, s]; AutoScale derives s from the
// data. Integer data is written as is, clamped to the width's domain.
//
// When the width is left at zero it is inferred from the element type:
// 8-bit types give 1 byte, 16-bit types 2 and 32-bit types 4. Floating-point
// and 64-bit data need an explicit width.
//
// # Clipping
//
// Values outside the output range are always clamped. Options.Clip decides
// what else happens: ClipWarn (the default) logs one warning through
// Options.Logger, ClipIgnore stays silent and ClipRaise fails with
// pcm.ErrClippedData before anything is written. WriteFile does not create
// the output file in that case.
//
// # Other Formats
//
// The formats subpackages decode WAV, MP3, Ogg Vorbis and AIFF into an
// audio.Source of normalized float64 samples. audio.ReadAll turns a source
// into a matrix that Write accepts directly.
package wavio
