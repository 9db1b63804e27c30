// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV files.
//
// Container parsing is done by github.com/go-audio/wav, which copes with
// extra chunks before or after the fmt chunk. Writing produces the
// canonical 44-byte layout.
//
// # Supported Formats
//
//   - PCM format tag 1 only
//   - 8, 16, 24 and 32 bits per sample (bit depths that are not a multiple
//     of 8 are rounded up to whole bytes)
//   - Any channel count and sample rate that fit the fmt chunk
//
// # Raw Access
//
// ReadPCM and WritePCM move the data chunk payload as bytes and leave
// sample interpretation to package pcm:
//
//	h, raw, err := wav.ReadPCM(file)
//	m, err := pcm.Decode(h.Channels, h.SampleWidth, raw)
//
//	raw, err := pcm.Encode(m, pcm.Width24)
//	err = wav.WritePCM(out, wav.Header{Channels: 2, SampleWidth: pcm.Width24, FrameRate: 48000}, raw)
//
// # Decoding WAV Files
//
// Decoder turns a WAV stream into an audio.Source of float64 samples
// normalized to [-1, 1). 8-bit data is centred on 128:
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float64, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Error Handling
//
//   - ErrNotWavFile: the RIFF/WAVE preamble is missing
//   - ErrUnsupportedWavLayout: no usable fmt chunk
//   - ErrUnsupportedEncoding: the fmt chunk is not plain PCM
//   - ErrMissingDataChunk: no data chunk follows the fmt chunk
//   - ErrInvalidFrameRate: a header with a rate that cannot be stored
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: actual audio samples, padded to an even length
package wav
