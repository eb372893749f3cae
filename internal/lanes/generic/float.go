package generic

import "github.com/cwbudde/algo-polyvec/internal/lanes"

// F32x4 holds four float32 lanes.
type F32x4 [4]float32

// LoadF32x4 copies four lanes from p.
func LoadF32x4(p *[4]float32) F32x4 {
	return F32x4(*p)
}

// BroadcastF32x4 returns a vector with every lane set to v.
func BroadcastF32x4(v float32) F32x4 {
	return F32x4{v, v, v, v}
}

// Array returns the lanes in order 0..3.
func (a F32x4) Array() [4]float32 { return a }

// Lane returns lane i.
func (a F32x4) Lane(i int) float32 { return a[i] }

// WithLane returns a copy of a with lane i set to v.
func (a F32x4) WithLane(i int, v float32) F32x4 {
	a[i] = v
	return a
}

// Add adds lanes.
func (a F32x4) Add(b F32x4) F32x4 {
	return F32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub subtracts lanes.
func (a F32x4) Sub(b F32x4) F32x4 {
	return F32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Neg flips the sign bit of every lane, NaN payloads included.
func (a F32x4) Neg() F32x4 {
	return a.bitwise(F32x4{}, func(x, _ uint32) uint32 { return x ^ lanes.SignMask })
}

// Mul rounds each product so that a following Add is never fused into an FMA.
func (a F32x4) Mul(b F32x4) F32x4 {
	return F32x4{float32(a[0] * b[0]), float32(a[1] * b[1]), float32(a[2] * b[2]), float32(a[3] * b[3])}
}

// And combines bit patterns with AND.
func (a F32x4) And(b F32x4) F32x4 {
	return a.bitwise(b, func(x, y uint32) uint32 { return x & y })
}

// Or combines bit patterns with OR.
func (a F32x4) Or(b F32x4) F32x4 {
	return a.bitwise(b, func(x, y uint32) uint32 { return x | y })
}

// Xor combines bit patterns with XOR.
func (a F32x4) Xor(b F32x4) F32x4 {
	return a.bitwise(b, func(x, y uint32) uint32 { return x ^ y })
}

// AndNot returns a AND NOT b on bit patterns.
func (a F32x4) AndNot(b F32x4) F32x4 {
	return a.bitwise(b, func(x, y uint32) uint32 { return x &^ y })
}

// Not inverts every bit.
func (a F32x4) Not() F32x4 {
	return a.bitwise(F32x4{}, func(x, _ uint32) uint32 { return ^x })
}

// bitwise applies op to the bit patterns of a and b lane by lane.
func (a F32x4) bitwise(b F32x4, op func(x, y uint32) uint32) F32x4 {
	return F32x4{
		fromBits(op(bits(a[0]), bits(b[0]))),
		fromBits(op(bits(a[1]), bits(b[1]))),
		fromBits(op(bits(a[2]), bits(b[2]))),
		fromBits(op(bits(a[3]), bits(b[3]))),
	}
}

// Min returns a where a < b, else b. With a NaN operand or a ±0 pair the
// second operand wins, as MINPS does.
func (a F32x4) Min(b F32x4) F32x4 {
	return F32x4{minf(a[0], b[0]), minf(a[1], b[1]), minf(a[2], b[2]), minf(a[3], b[3])}
}

// Max returns a where a > b, else b. With a NaN operand or a ±0 pair the
// second operand wins, as MAXPS does.
func (a F32x4) Max(b F32x4) F32x4 {
	return F32x4{maxf(a[0], b[0]), maxf(a[1], b[1]), maxf(a[2], b[2]), maxf(a[3], b[3])}
}

func minf(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

func maxf(x, y float32) float32 {
	if x > y {
		return x
	}
	return y
}

// Equal returns a full mask where a == b; NaN is unequal.
func (a F32x4) Equal(b F32x4) F32x4 {
	return F32x4{
		fromBits(maskBits(a[0] == b[0])),
		fromBits(maskBits(a[1] == b[1])),
		fromBits(maskBits(a[2] == b[2])),
		fromBits(maskBits(a[3] == b[3])),
	}
}

// Greater returns a full mask where a > b.
func (a F32x4) Greater(b F32x4) F32x4 {
	return F32x4{
		fromBits(maskBits(a[0] > b[0])),
		fromBits(maskBits(a[1] > b[1])),
		fromBits(maskBits(a[2] > b[2])),
		fromBits(maskBits(a[3] > b[3])),
	}
}

// Less returns a full mask where a < b.
func (a F32x4) Less(b F32x4) F32x4 {
	return F32x4{
		fromBits(maskBits(a[0] < b[0])),
		fromBits(maskBits(a[1] < b[1])),
		fromBits(maskBits(a[2] < b[2])),
		fromBits(maskBits(a[3] < b[3])),
	}
}

// Sum adds the lanes strictly left to right: ((a0 + a1) + a2) + a3.
func (a F32x4) Sum() float32 {
	return a[0] + a[1] + a[2] + a[3]
}

// AnyMask reports whether any lane has a nonzero bit pattern, so -0 and
// denormals count as set.
func (a F32x4) AnyMask() bool {
	return bits(a[0])|bits(a[1])|bits(a[2])|bits(a[3]) != 0
}

// AsInt reinterprets the lane bits as int32.
func (a F32x4) AsInt() I32x4 {
	return I32x4{
		int32(bits(a[0])),
		int32(bits(a[1])),
		int32(bits(a[2])),
		int32(bits(a[3])),
	}
}
