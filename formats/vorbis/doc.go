// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into an audio.Source.
//
// Decoding is done by github.com/jfreymuth/oggvorbis. Its float32 output is
// already normalized, so samples are widened to float64 and passed through
// unchanged, keeping the channel count and sample rate of the stream.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	samples, err := audio.ReadAll(src, 4096)
package vorbis
