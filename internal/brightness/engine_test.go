package brightness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeAbsoluteWithinRange(t *testing.T) {
	for _, max := range []int64{1, 7, 100, 255, 937, 120000} {
		for _, v := range []int64{0, 1, max / 2, max - 1, max} {
			for _, cur := range []int64{0, max / 3, max} {
				got := Compute(Request{Magnitude: v}, cur, max)
				require.Equal(t, v, got, "value=%d cur=%d max=%d", v, cur, max)
			}
		}
	}
}

func TestComputeClampsToBounds(t *testing.T) {
	const max = 255
	for _, tt := range []struct {
		req  Request
		cur  int64
		want int64
	}{
		{Request{Magnitude: 256}, 10, max},
		{Request{Magnitude: math.MaxInt64}, 10, max},
		{Request{Magnitude: 300, Relative: true}, 10, max},
		{Request{Magnitude: -300, Relative: true}, 10, 0},
		{Request{Magnitude: math.MaxInt64, Relative: true}, max, max},
		{Request{Magnitude: math.MinInt64, Relative: true}, 1, 0},
		{Request{Magnitude: 150, Percent: true}, 10, max},
		{Request{Magnitude: 50, Relative: true, Percent: true}, 200, max},
		{Request{Magnitude: -50, Relative: true, Percent: true}, 20, 0},
		{Request{Magnitude: math.MaxInt64, Percent: true}, 0, max},
		{Request{Magnitude: math.MinInt64, Relative: true, Percent: true}, 100, 0},
	} {
		got := Compute(tt.req, tt.cur, max)
		require.Equal(t, tt.want, got, "req=%s cur=%d", tt.req, tt.cur)
	}
}

func TestCompute(t *testing.T) {
	for _, tt := range []struct {
		req      string
		cur, max int64
		want     int64
	}{
		{"50%", 100, 255, 128},
		{"0%", 100, 255, 0},
		{"100%", 0, 255, 255},
		{"1%", 0, 100, 1},
		{"+10", 100, 255, 110},
		{"-10", 100, 255, 90},
		{"+5%", 50, 200, 60},
		{"-5%", 60, 200, 50},
		{"+1%", 0, 937, 10},
		{"50%", 0, 14, 7},
	} {
		req, err := Parse(tt.req)
		require.NoError(t, err)
		got := Compute(req, tt.cur, tt.max)
		require.Equal(t, tt.want, got, "Compute(%s, %d, %d)", tt.req, tt.cur, tt.max)
	}
}

func TestRelativePercentRoundTrip(t *testing.T) {
	up := Request{Magnitude: 5, Relative: true, Percent: true}
	down := Request{Magnitude: -5, Relative: true, Percent: true}

	cur := Compute(up, 50, 200)
	require.Equal(t, int64(60), cur)
	require.Equal(t, int64(50), Compute(down, cur, 200))

	// Repeated steps converge on the same levels in both directions.
	const max = 937
	levels := []int64{Compute(Request{Magnitude: 20, Percent: true}, 0, max)}
	for i := 0; i < 5; i++ {
		levels = append(levels, Compute(up, levels[len(levels)-1], max))
	}
	cur = levels[len(levels)-1]
	for i := len(levels) - 2; i >= 0; i-- {
		cur = Compute(down, cur, max)
		require.Equal(t, levels[i], cur, "step %d", i)
	}
}

func TestPercentToRaw(t *testing.T) {
	for _, max := range []int64{1, 3, 7, 14, 100, 255, 937, 4882, 120000} {
		require.Equal(t, int64(0), PercentToRaw(0, max), "max=%d", max)
		require.Equal(t, max, PercentToRaw(100, max), "max=%d", max)
	}
	require.Equal(t, int64(1), PercentToRaw(1, 100))
	require.Equal(t, int64(1), PercentToRaw(1, 7))
	require.Equal(t, int64(128), PercentToRaw(50, 255))
	require.Equal(t, int64(-2), PercentToRaw(-1, 255))
}

func TestRawToPercent(t *testing.T) {
	for _, tt := range []struct {
		raw, max, want int64
	}{
		{0, 255, 0},
		{51, 255, 20},
		{255, 255, 100},
		{254, 255, 99},
		{1, 937, 0},
		{50, 200, 25},
	} {
		require.Equal(t, tt.want, RawToPercent(tt.raw, tt.max), "RawToPercent(%d, %d)", tt.raw, tt.max)
	}
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, Clamp(-1, 0, 10))
	require.Equal(t, 10, Clamp(11, 0, 10))
	require.Equal(t, 5, Clamp(5, 0, 10))
	require.Equal(t, uint8(200), Clamp[uint8](250, 0, 200))
}
