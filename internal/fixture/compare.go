package fixture

import (
	"fmt"
	"math"
)

// Bits4 returns the bit patterns of four float lanes.
func Bits4[V ~[4]float32](v V) [4]uint32 {
	return [4]uint32{
		math.Float32bits(v[0]),
		math.Float32bits(v[1]),
		math.Float32bits(v[2]),
		math.Float32bits(v[3]),
	}
}

// SameFloat reports whether got and want have the same bit pattern. Any two
// NaNs match: arithmetic may pick either operand's payload, and may quiet it.
func SameFloat(got, want float32) bool {
	if math.IsNaN(float64(got)) && math.IsNaN(float64(want)) {
		return true
	}
	return math.Float32bits(got) == math.Float32bits(want)
}

// SameLanes applies SameFloat lane by lane. Signed zeros must match exactly.
func SameLanes[V ~[4]float32](got, want V) bool {
	for i := range got {
		if !SameFloat(got[i], want[i]) {
			return false
		}
	}
	return true
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
