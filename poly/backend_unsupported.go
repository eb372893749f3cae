//go:build polyvec_avx512 || polyvec_neon

package poly

// AVX-512 and NEON backends are not implemented. Selecting one must not
// quietly produce a generic build with different real-time characteristics.
var _ = polyvec_backend_not_implemented_remove_polyvec_avx512_or_polyvec_neon_tag
