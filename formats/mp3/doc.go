// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio into an audio.Source.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always emits
// interleaved stereo 16-bit little-endian PCM. Those bytes are unpacked
// with pcm.Decode and normalized to [-1, 1), so a mono MP3 arrives as two
// identical channels.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	samples, err := audio.ReadAll(src, 4096)
//
// The float samples can be written at any width with wavio.Write.
package mp3
