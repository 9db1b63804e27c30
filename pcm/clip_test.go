// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClipPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  ClipPolicy
	}{
		{"warn", ClipWarn},
		{"ignore", ClipIgnore},
		{"raise", ClipRaise},
		{"Raise", ClipRaise},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseClipPolicy(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestParseClipPolicy_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseClipPolicy("explode")
	require.ErrorIs(t, err, ErrInvalidClipPolicy)
}

func TestClipPolicy_ZeroValueWarns(t *testing.T) {
	t.Parallel()

	var p ClipPolicy
	assert.Equal(t, ClipWarn, p)
	assert.NoError(t, p.Validate())
}

func TestClipPolicy_Validate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, ClipPolicy(3).Validate(), ErrInvalidClipPolicy)
	assert.Equal(t, "ClipPolicy(3)", ClipPolicy(3).String())
}

func TestClipPolicy_Report(t *testing.T) {
	t.Parallel()

	logger, logs := observed()

	require.NoError(t, ClipIgnore.report(logger, "detail"))
	assert.Zero(t, logs.Len())

	require.NoError(t, ClipWarn.report(logger, "detail"))
	assert.Equal(t, 1, logs.Len())

	err := ClipRaise.report(logger, "detail")
	require.ErrorIs(t, err, ErrClippedData)
	assert.Contains(t, err.Error(), "detail")
	assert.Equal(t, 1, logs.Len())

	require.ErrorIs(t, ClipPolicy(42).report(logger, "detail"), ErrInvalidClipPolicy)
}
