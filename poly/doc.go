// Package poly provides fixed 4-lane vectors for real-time audio code.
//
// Int holds four int32 lanes and Float holds four float32 lanes. Both types
// expose the same operations so oscillators, filters and voice mixers can be
// written once against "a vector of 4 lanes":
//
//	gain := poly.BroadcastFloat(0.5)
//	x := poly.NewFloat(0.1, -0.4, 0.9, 1.3)
//	y := x.Mul(gain)
//	loud := y.Greater(poly.BroadcastFloat(0.4))
//	y = poly.SelectFloat(loud, poly.BroadcastFloat(0.4), y)
//
// # Masks
//
// Equal, Greater and Less return masks: every bit of a true lane is set and
// every bit of a false lane is clear. A mask combines with data through the
// bitwise operations, which for Float act on the IEEE bit pattern of each lane:
//
//	select(mask, a, b) = (a AND mask) OR (b AND NOT mask)
//
// AsInt and AsFloat reinterpret the 128 bits of a vector as the other type
// without changing them. They are the only bridge between the two types;
// ToFloat and ToInt are numeric conversions and are named differently.
//
// # Backends
//
// The lane implementation is fixed at build time:
//
//   - GOARCH=amd64 GOAMD64=v3 GOEXPERIMENT=simd: the "avx" backend on
//     simd/archsimd 128-bit registers.
//   - anything else, or the purego tag: the "generic" backend, four scalar
//     operations per vector operation.
//
// The polyvec_avx tag requires the avx backend and makes the build fail when
// it is not available. The polyvec_avx512 and polyvec_neon tags name
// strategies that do not exist yet; building with them fails rather than
// falling back. Backend reports the backend compiled in.
//
// Results are bit-identical across backends for every Int operation and every
// Float operation, with one exception: when Add, Sub, Mul or Sum produce a NaN,
// its payload may differ. Min and Max fix their operand order on every
// backend, so they agree bit for bit even on NaN and signed zero lanes.
//
// # Real-time use
//
// No function in this package allocates, blocks or logs. Vectors are values;
// sharing one *Int or *Float between goroutines needs external synchronization.
// Lane indexes must be in [0, Lanes); other indexes panic.
package poly
