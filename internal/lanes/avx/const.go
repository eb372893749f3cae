//go:build amd64 && amd64.v3 && goexperiment.simd

package avx

import "simd/archsimd"

var (
	zeros = archsimd.BroadcastInt32x4(0)
	ones  = archsimd.BroadcastInt32x4(-1)
	signs = archsimd.BroadcastInt32x4(-0x80000000)
)

// allBitsTrue is the ToBits value of a Mask32x4 with every lane true.
const allBitsTrue = 0b1111

// widen turns a comparison mask into all-ones / all-zeros lanes.
// Merge keeps the receiver where the mask is true and the argument elsewhere.
func widen(m archsimd.Mask32x4) archsimd.Int32x4 {
	return ones.Merge(zeros, m)
}
