// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedEncoding  = errors.New("only uncompressed PCM WAV data is supported")
	ErrMissingDataChunk     = errors.New("WAV file has no data chunk")
	ErrInvalidFrameRate     = errors.New("frame rate must be a positive 32-bit value")
	ErrDataTooLarge         = errors.New("PCM data does not fit in a RIFF file")
)
