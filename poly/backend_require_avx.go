//go:build polyvec_avx && (purego || !(amd64 && amd64.v3 && goexperiment.simd))

package poly

// The polyvec_avx tag was given but the avx backend cannot be compiled. It
// needs GOARCH=amd64, GOAMD64=v3 or higher, GOEXPERIMENT=simd and no purego
// tag. The undefined identifier below stops the build.
var _ = polyvec_avx_requires_GOAMD64_v3_and_GOEXPERIMENT_simd_without_purego
