//go:build amd64 && amd64.v3 && goexperiment.simd

package avx

import "simd/archsimd"

// I32x4 holds four int32 lanes in an XMM register.
type I32x4 struct {
	v archsimd.Int32x4
}

// LoadI32x4 loads four lanes from p.
func LoadI32x4(p *[4]int32) I32x4 {
	return I32x4{archsimd.LoadInt32x4(p)}
}

// BroadcastI32x4 returns a vector with every lane set to v.
func BroadcastI32x4(v int32) I32x4 {
	return I32x4{archsimd.BroadcastInt32x4(v)}
}

// Array stores the lanes in order 0..3.
func (a I32x4) Array() [4]int32 {
	var out [4]int32
	a.v.Store(&out)
	return out
}

// Lane returns lane i.
func (a I32x4) Lane(i int) int32 {
	return a.Array()[i]
}

// WithLane returns a copy of a with lane i set to v.
func (a I32x4) WithLane(i int, v int32) I32x4 {
	arr := a.Array()
	arr[i] = v
	return LoadI32x4(&arr)
}

// Add adds lanes; overflow wraps.
func (a I32x4) Add(b I32x4) I32x4 { return I32x4{a.v.Add(b.v)} }

// Sub subtracts lanes; overflow wraps.
func (a I32x4) Sub(b I32x4) I32x4 { return I32x4{a.v.Sub(b.v)} }

// Neg is 0 - a, so MinInt32 wraps to itself.
func (a I32x4) Neg() I32x4 { return I32x4{zeros.Sub(a.v)} }

// Mul is VPMULLD: the low 32 bits of each product.
func (a I32x4) Mul(b I32x4) I32x4 { return I32x4{a.v.Mul(b.v)} }

// And combines lanes with AND.
func (a I32x4) And(b I32x4) I32x4 { return I32x4{a.v.And(b.v)} }

// Or combines lanes with OR.
func (a I32x4) Or(b I32x4) I32x4 { return I32x4{a.v.Or(b.v)} }

// Xor combines lanes with XOR.
func (a I32x4) Xor(b I32x4) I32x4 { return I32x4{a.v.Xor(b.v)} }

// AndNot returns a AND NOT b.
func (a I32x4) AndNot(b I32x4) I32x4 { return I32x4{a.v.AndNot(b.v)} }

// Not inverts every bit.
func (a I32x4) Not() I32x4 { return I32x4{a.v.Xor(ones)} }

// Min is the signed minimum.
func (a I32x4) Min(b I32x4) I32x4 { return I32x4{a.v.Min(b.v)} }

// Max is the signed maximum.
func (a I32x4) Max(b I32x4) I32x4 { return I32x4{a.v.Max(b.v)} }

// Equal returns a full mask where a == b.
func (a I32x4) Equal(b I32x4) I32x4 { return I32x4{widen(a.v.Equal(b.v))} }

// Greater returns a full mask where a > b.
func (a I32x4) Greater(b I32x4) I32x4 { return I32x4{widen(a.v.Greater(b.v))} }

// Less swaps the operands of VPCMPGTD.
func (a I32x4) Less(b I32x4) I32x4 { return I32x4{widen(b.v.Greater(a.v))} }

// Sum adds the lanes in order 0..3 with wrapping arithmetic.
func (a I32x4) Sum() int32 {
	arr := a.Array()
	return arr[0] + arr[1] + arr[2] + arr[3]
}

// AnyMask reports whether any lane differs from zero.
func (a I32x4) AnyMask() bool {
	return a.v.Equal(zeros).ToBits() != allBitsTrue
}

// AsFloat reinterprets the lane bits as float32.
func (a I32x4) AsFloat() F32x4 { return F32x4{a.v.AsFloat32x4()} }
