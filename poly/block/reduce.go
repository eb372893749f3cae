package block

import (
	"math"

	"github.com/cwbudde/algo-polyvec/poly"
)

// Sum returns the sum of all elements. Samples are accumulated in four lane
// sums, lane k taking x[k], x[k+4], ..., which are then folded left to right.
// The result can differ in the last bits from a sequential sum.
func Sum(x []float32) float32 {
	var acc poly.Float
	n := body(len(x))
	for i := 0; i < n; i += poly.Lanes {
		acc = acc.Add(poly.LoadFloat(x[i:]))
	}
	if n < len(x) {
		acc = acc.Add(loadTail(x[n:], 0))
	}
	return acc.Sum()
}

// MaxAbs returns the largest |x[i]|, or 0 for an empty slice. NaN samples
// are skipped.
func MaxAbs(x []float32) float32 {
	var peak poly.Float
	n := body(len(x))
	for i := 0; i < n; i += poly.Lanes {
		peak = poly.LoadFloat(x[i:]).Abs().Max(peak)
	}
	if n < len(x) {
		peak = loadTail(x[n:], 0).Abs().Max(peak)
	}
	arr := peak.Array()
	return max(arr[0], arr[1], arr[2], arr[3])
}

// AnyAbove reports whether any |x[i]| > threshold. It stops at the first
// group of four samples that contains one. NaN samples never count.
func AnyAbove(x []float32, threshold float32) bool {
	t := poly.BroadcastFloat(threshold)
	n := body(len(x))
	for i := 0; i < n; i += poly.Lanes {
		if poly.LoadFloat(x[i:]).Abs().Greater(t).AnyMask() {
			return true
		}
	}
	if n < len(x) {
		// NaN padding compares false against any threshold.
		return loadTail(x[n:], float32(math.NaN())).Abs().Greater(t).AnyMask()
	}
	return false
}
