// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavio/formats/wav"
	"github.com/ik5/wavio/pcm"
)

// Example_decoding demonstrates decoding a WAV file into normalized samples.
func Example_decoding() {
	wavData := new(bytes.Buffer)
	h := wav.Header{Channels: 1, SampleWidth: pcm.Width16, FrameRate: 16000}
	payload := []byte{0x00, 0x40, 0x00, 0xC0, 0x00, 0x00}
	if err := wav.WritePCM(wavData, h, payload); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	decoder := wav.Decoder{}
	source, err := decoder.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Channels: %d\n", source.Channels())

	buf := make([]float64, 10)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Samples: %v\n", buf[:n])
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Samples: [0.5 -0.5 0]
}

// Example_encoding demonstrates writing a 24-bit stereo WAV file.
func Example_encoding() {
	m, _ := pcm.NewMatrix([]int32{-1, 1, 8388607, -8388608}, 2)
	raw, _ := pcm.Encode(m, pcm.Width24)

	output := new(bytes.Buffer)
	h := wav.Header{Channels: 2, SampleWidth: pcm.Width24, FrameRate: 48000}
	if err := wav.WritePCM(output, h, raw); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Wrote WAV file: %d bytes\n", output.Len())
	fmt.Printf("Header (44 bytes) + data (%d bytes)\n", len(raw))
	// Output:
	// Wrote WAV file: 56 bytes
	// Header (44 bytes) + data (12 bytes)
}

func ExampleReadPCM() {
	wavData := new(bytes.Buffer)
	h := wav.Header{Channels: 1, SampleWidth: pcm.Width8, FrameRate: 8000}
	_ = wav.WritePCM(wavData, h, []byte{0, 128, 255})

	got, raw, err := wav.ReadPCM(bytes.NewReader(wavData.Bytes()))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(got)
	fmt.Println(raw)
	// Output:
	// 1 ch, 8-bit, 8000 Hz, 3 frames
	// [0 128 255]
}

// Example_errorHandling shows how to tell container errors apart.
func Example_errorHandling() {
	_, _, err := wav.ReadPCM(bytes.NewReader([]byte("not an audio file")))

	switch {
	case errors.Is(err, wav.ErrNotWavFile):
		fmt.Println("Not a valid WAV file")
	case errors.Is(err, wav.ErrUnsupportedEncoding):
		fmt.Println("Compressed WAV")
	case err != nil:
		fmt.Printf("Decode error: %v\n", err)
	}
	// Output: Not a valid WAV file
}
