// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ClipPolicy decides what happens when a value falls outside the output
// range. Values are always clamped; the policy only controls whether that
// is silent, logged, or an error. The zero value is ClipWarn.
type ClipPolicy int

const (
	ClipWarn ClipPolicy = iota
	ClipIgnore
	ClipRaise
)

const clipMessage = "some data values have been clipped"

func ParseClipPolicy(s string) (ClipPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn":
		return ClipWarn, nil
	case "ignore":
		return ClipIgnore, nil
	case "raise":
		return ClipRaise, nil
	}
	return ClipWarn, fmt.Errorf("%w: got %q", ErrInvalidClipPolicy, s)
}

func (p ClipPolicy) Validate() error {
	switch p {
	case ClipWarn, ClipIgnore, ClipRaise:
		return nil
	}
	return fmt.Errorf("%w: got %d", ErrInvalidClipPolicy, int(p))
}

func (p ClipPolicy) String() string {
	switch p {
	case ClipWarn:
		return "warn"
	case ClipIgnore:
		return "ignore"
	case ClipRaise:
		return "raise"
	}
	return fmt.Sprintf("ClipPolicy(%d)", int(p))
}

// report is called once a clipping violation has been found and before any
// output exists.
func (p ClipPolicy) report(logger *zap.Logger, detail string, fields ...zap.Field) error {
	switch p {
	case ClipIgnore:
		return nil
	case ClipWarn:
		orNop(logger).Warn(clipMessage, fields...)
		return nil
	case ClipRaise:
		return fmt.Errorf("%w: %s", ErrClippedData, detail)
	}
	return p.Validate()
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
