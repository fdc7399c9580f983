package brightness

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Compute returns the raw brightness that req asks for, given the device's
// current and max raw brightness. The result is always in [0, max].
// Compute requires max > 0.
//
// A relative percent change is applied to the current percentage (rounded
// down) rather than converted into a raw delta, so that repeated +N% and -N%
// steps retrace the same levels.
func Compute(req Request, current, max int64) int64 {
	var target int64
	switch {
	case !req.Relative && !req.Percent:
		target = req.Magnitude
	case !req.Relative && req.Percent:
		target = PercentToRaw(Clamp(req.Magnitude, 0, 100), max)
	case req.Relative && !req.Percent:
		target = addSat(current, req.Magnitude)
	default:
		pct := addSat(RawToPercent(current, max), req.Magnitude)
		target = PercentToRaw(Clamp(pct, 0, 100), max)
	}
	return Clamp(target, 0, max)
}

// PercentToRaw converts p percent of max to raw units, rounding any
// fractional result up so that a nonzero percentage never maps to a lower
// level than requested (PercentToRaw(1, 100) == 1). The result is not
// clamped.
func PercentToRaw(p, max int64) int64 {
	return ceilDiv(p*max, 100)
}

// RawToPercent converts a raw brightness to a percentage of max, rounding
// down.
func RawToPercent(raw, max int64) int64 {
	return floorDiv(raw*100, max)
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// addSat adds a and b, saturating at the int64 limits.
func addSat(a, b int64) int64 {
	c := a + b
	if (c > a) != (b > 0) {
		if b > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return c
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
