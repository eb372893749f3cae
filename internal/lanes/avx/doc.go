// Package avx is the hardware backend for the 4-lane vectors, built on the
// 128-bit integer and float types of simd/archsimd.
//
// The package only has content when compiled with GOARCH=amd64, GOAMD64=v3 or
// higher and GOEXPERIMENT=simd. The GOAMD64 level guarantees AVX and AVX2 at
// compile time, so no runtime feature check is needed.
package avx
