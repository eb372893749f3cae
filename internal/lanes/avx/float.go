//go:build amd64 && amd64.v3 && goexperiment.simd

package avx

import "simd/archsimd"

// F32x4 holds four float32 lanes in an XMM register.
type F32x4 struct {
	v archsimd.Float32x4
}

// LoadF32x4 loads four lanes from p.
func LoadF32x4(p *[4]float32) F32x4 {
	return F32x4{archsimd.LoadFloat32x4(p)}
}

// BroadcastF32x4 returns a vector with every lane set to v.
func BroadcastF32x4(v float32) F32x4 {
	return F32x4{archsimd.BroadcastFloat32x4(v)}
}

// Array stores the lanes in order 0..3.
func (a F32x4) Array() [4]float32 {
	var out [4]float32
	a.v.Store(&out)
	return out
}

// Lane returns lane i.
func (a F32x4) Lane(i int) float32 {
	return a.Array()[i]
}

// WithLane returns a copy of a with lane i set to v.
func (a F32x4) WithLane(i int, v float32) F32x4 {
	arr := a.Array()
	arr[i] = v
	return LoadF32x4(&arr)
}

// Add adds lanes.
func (a F32x4) Add(b F32x4) F32x4 { return F32x4{a.v.Add(b.v)} }

// Sub subtracts lanes.
func (a F32x4) Sub(b F32x4) F32x4 { return F32x4{a.v.Sub(b.v)} }

// Neg flips the sign bit of every lane.
func (a F32x4) Neg() F32x4 { return F32x4{a.v.AsInt32x4().Xor(signs).AsFloat32x4()} }

// Mul multiplies lanes.
func (a F32x4) Mul(b F32x4) F32x4 { return F32x4{a.v.Mul(b.v)} }

// archsimd has no bitwise ops on float vectors; go through the int view.

// And combines bit patterns with AND.
func (a F32x4) And(b F32x4) F32x4 { return a.AsInt().And(b.AsInt()).AsFloat() }

// Or combines bit patterns with OR.
func (a F32x4) Or(b F32x4) F32x4 { return a.AsInt().Or(b.AsInt()).AsFloat() }

// Xor combines bit patterns with XOR.
func (a F32x4) Xor(b F32x4) F32x4 { return a.AsInt().Xor(b.AsInt()).AsFloat() }

// AndNot returns a AND NOT b on bit patterns.
func (a F32x4) AndNot(b F32x4) F32x4 { return a.AsInt().AndNot(b.AsInt()).AsFloat() }

// Not inverts every bit.
func (a F32x4) Not() F32x4 { return a.AsInt().Not().AsFloat() }

// Min returns a where a < b, else b, so b wins on NaN or a ±0 pair.
// archsimd Min is treated as commutative and may swap operands, so the
// order is fixed with a compare and merge.
func (a F32x4) Min(b F32x4) F32x4 { return F32x4{a.v.Merge(b.v, b.v.Greater(a.v))} }

// Max returns a where a > b, else b, so b wins on NaN or a ±0 pair.
func (a F32x4) Max(b F32x4) F32x4 { return F32x4{a.v.Merge(b.v, a.v.Greater(b.v))} }

// Equal returns a full mask where a == b; NaN is unequal.
func (a F32x4) Equal(b F32x4) F32x4 {
	return F32x4{widen(a.v.Equal(b.v)).AsFloat32x4()}
}

// Greater returns a full mask where a > b.
func (a F32x4) Greater(b F32x4) F32x4 {
	return F32x4{widen(a.v.Greater(b.v)).AsFloat32x4()}
}

// Less returns a full mask where a < b.
func (a F32x4) Less(b F32x4) F32x4 {
	return F32x4{widen(b.v.Greater(a.v)).AsFloat32x4()}
}

// Sum adds the lanes strictly left to right: ((a0 + a1) + a2) + a3.
func (a F32x4) Sum() float32 {
	arr := a.Array()
	return arr[0] + arr[1] + arr[2] + arr[3]
}

// AnyMask compares bit patterns, so -0 and denormals count as set.
func (a F32x4) AnyMask() bool {
	return a.AsInt().AnyMask()
}

// AsInt reinterprets the lane bits as int32.
func (a F32x4) AsInt() I32x4 { return I32x4{a.v.AsInt32x4()} }
