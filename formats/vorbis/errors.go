// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNoChannels indicates an identification header with zero channels.
var ErrNoChannels = errors.New("vorbis stream has no channels")
