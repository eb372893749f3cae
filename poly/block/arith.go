package block

import "github.com/cwbudde/algo-polyvec/poly"

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float32) {
	checkLen(len(dst), len(a), len(b))
	n := body(len(dst))
	for i := 0; i < n; i += poly.Lanes {
		poly.LoadFloat(a[i:]).Add(poly.LoadFloat(b[i:])).Store(dst[i:])
	}
	if n < len(dst) {
		storeTail(dst[n:], loadTail(a[n:], 0).Add(loadTail(b[n:], 0)))
	}
}

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlock(dst, a, b []float32) {
	checkLen(len(dst), len(a), len(b))
	n := body(len(dst))
	for i := 0; i < n; i += poly.Lanes {
		poly.LoadFloat(a[i:]).Mul(poly.LoadFloat(b[i:])).Store(dst[i:])
	}
	if n < len(dst) {
		storeTail(dst[n:], loadTail(a[n:], 0).Mul(loadTail(b[n:], 0)))
	}
}

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func ScaleBlock(dst, src []float32, scale float32) {
	checkLen(len(dst), len(src))
	s := poly.BroadcastFloat(scale)
	n := body(len(dst))
	for i := 0; i < n; i += poly.Lanes {
		poly.LoadFloat(src[i:]).Mul(s).Store(dst[i:])
	}
	if n < len(dst) {
		storeTail(dst[n:], loadTail(src[n:], 0).Mul(s))
	}
}

// MixBlock accumulates a scaled source into dst: dst[i] += src[i] * gain.
// The product is rounded before the addition; no fused multiply-add is used.
// Slices must have equal length. Panics if lengths differ.
func MixBlock(dst, src []float32, gain float32) {
	checkLen(len(dst), len(src))
	g := poly.BroadcastFloat(gain)
	n := body(len(dst))
	for i := 0; i < n; i += poly.Lanes {
		poly.LoadFloat(dst[i:]).Add(poly.LoadFloat(src[i:]).Mul(g)).Store(dst[i:])
	}
	if n < len(dst) {
		storeTail(dst[n:], loadTail(dst[n:], 0).Add(loadTail(src[n:], 0).Mul(g)))
	}
}

// ClampBlock limits each element to [lo, hi]: dst[i] = min(max(src[i], lo), hi).
// A NaN sample becomes lo. Slices must have equal length. Panics if lengths differ.
func ClampBlock(dst, src []float32, lo, hi float32) {
	checkLen(len(dst), len(src))
	l, h := poly.BroadcastFloat(lo), poly.BroadcastFloat(hi)
	n := body(len(dst))
	for i := 0; i < n; i += poly.Lanes {
		poly.LoadFloat(src[i:]).Max(l).Min(h).Store(dst[i:])
	}
	if n < len(dst) {
		storeTail(dst[n:], loadTail(src[n:], 0).Max(l).Min(h))
	}
}
