// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("sample count must be a multiple of channels")
	ErrUnknownFormat  = errors.New("no decoder registered for format")
	ErrMissingFormat  = errors.New("buffer has no format")
)
