// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestClampInts_Unsigned8(t *testing.T) {
	t.Parallel()

	got, err := ClampInts(Mono([]int{-100, 0, 100, 200, 300, 325}), Width8, ClipIgnore, nil)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 100, 200, 255, 255}, got.Samples())
}

func TestClampInts_Raise(t *testing.T) {
	t.Parallel()

	logger, logs := observed()
	_, err := ClampInts(Mono([]int{0, 100, 200, 300, 400}), Width8, ClipRaise, logger)
	require.ErrorIs(t, err, ErrClippedData)
	assert.Contains(t, err.Error(), "[0, 255]")
	assert.Zero(t, logs.Len())
}

func TestClampInts_Warn(t *testing.T) {
	t.Parallel()

	logger, logs := observed()
	got, err := ClampInts(Mono([]int16{-10000, 0, 10000}), Width8, ClipWarn, logger)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 255}, got.Samples())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, clipMessage, entries[0].Message)
	assert.Equal(t, int64(0), entries[0].ContextMap()["min"])
	assert.Equal(t, int64(255), entries[0].ContextMap()["max"])
}

func TestClampInts_InRangeIsSilent(t *testing.T) {
	t.Parallel()

	logger, logs := observed()
	in := Mono([]int32{-8388608, -1, 0, 8388607})
	got, err := ClampInts(in, Width24, ClipRaise, logger)
	require.NoError(t, err)
	assert.True(t, in.Equal(got))
	assert.Zero(t, logs.Len())
}

func TestClampInts_SignedToUnsigned(t *testing.T) {
	t.Parallel()

	in := Mono([]int8{-128, -8, -1, 0, 1, 8, 127})
	got, err := ClampInts(in, Width8, ClipIgnore, nil)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 0, 0, 0, 1, 8, 127}, got.Samples())
}

func TestClampInts_WideTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		width Width
		got   func() (Matrix[int32], error)
		want  []int32
	}{
		{
			name:  "int64 into 16-bit",
			width: Width16,
			got: func() (Matrix[int32], error) {
				return ClampInts(Mono([]int64{math.MinInt64, -40000, 40000, math.MaxInt64}), Width16, ClipIgnore, nil)
			},
			want: []int32{-32768, -32768, 32767, 32767},
		},
		{
			name:  "uint64 above int64 range",
			width: Width32,
			got: func() (Matrix[int32], error) {
				return ClampInts(Mono([]uint64{0, math.MaxUint64, 1 << 63}), Width32, ClipIgnore, nil)
			},
			want: []int32{0, math.MaxInt32, math.MaxInt32},
		},
		{
			name:  "uint32 into 24-bit",
			width: Width24,
			got: func() (Matrix[int32], error) {
				return ClampInts(Mono([]uint32{8388607, 8388608, math.MaxUint32}), Width24, ClipIgnore, nil)
			},
			want: []int32{8388607, 8388607, 8388607},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Samples())
		})
	}
}

func TestClampInts_Errors(t *testing.T) {
	t.Parallel()

	_, err := ClampInts(Mono([]int16{1}), 0, ClipWarn, nil)
	require.ErrorIs(t, err, ErrInvalidWidth)

	_, err = ClampInts(Mono([]int16{1}), Width16, ClipPolicy(-1), nil)
	require.ErrorIs(t, err, ErrInvalidClipPolicy)
}
