package generic

// I32x4 holds four int32 lanes.
type I32x4 [4]int32

// LoadI32x4 copies four lanes from p.
func LoadI32x4(p *[4]int32) I32x4 {
	return I32x4(*p)
}

// BroadcastI32x4 returns a vector with every lane set to v.
func BroadcastI32x4(v int32) I32x4 {
	return I32x4{v, v, v, v}
}

// Array returns the lanes in order 0..3.
func (a I32x4) Array() [4]int32 { return a }

// Lane returns lane i.
func (a I32x4) Lane(i int) int32 { return a[i] }

// WithLane returns a copy of a with lane i set to v.
func (a I32x4) WithLane(i int, v int32) I32x4 {
	a[i] = v
	return a
}

// Add adds lanes; overflow wraps.
func (a I32x4) Add(b I32x4) I32x4 {
	return I32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub subtracts lanes; overflow wraps.
func (a I32x4) Sub(b I32x4) I32x4 {
	return I32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Neg negates lanes; MinInt32 stays MinInt32.
func (a I32x4) Neg() I32x4 {
	return I32x4{-a[0], -a[1], -a[2], -a[3]}
}

// Mul keeps the low 32 bits of each lane product.
func (a I32x4) Mul(b I32x4) I32x4 {
	return I32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// And combines lanes with AND.
func (a I32x4) And(b I32x4) I32x4 {
	return I32x4{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

// Or combines lanes with OR.
func (a I32x4) Or(b I32x4) I32x4 {
	return I32x4{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

// Xor combines lanes with XOR.
func (a I32x4) Xor(b I32x4) I32x4 {
	return I32x4{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// AndNot returns a AND NOT b.
func (a I32x4) AndNot(b I32x4) I32x4 {
	return I32x4{a[0] &^ b[0], a[1] &^ b[1], a[2] &^ b[2], a[3] &^ b[3]}
}

// Not inverts every bit.
func (a I32x4) Not() I32x4 {
	return I32x4{^a[0], ^a[1], ^a[2], ^a[3]}
}

// Min is the signed minimum.
func (a I32x4) Min(b I32x4) I32x4 {
	return I32x4{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

// Max is the signed maximum.
func (a I32x4) Max(b I32x4) I32x4 {
	return I32x4{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2]), max(a[3], b[3])}
}

// Equal returns a full mask where a == b.
func (a I32x4) Equal(b I32x4) I32x4 {
	return I32x4{
		maskInt(a[0] == b[0]),
		maskInt(a[1] == b[1]),
		maskInt(a[2] == b[2]),
		maskInt(a[3] == b[3]),
	}
}

// Greater returns a full mask where a > b.
func (a I32x4) Greater(b I32x4) I32x4 {
	return I32x4{
		maskInt(a[0] > b[0]),
		maskInt(a[1] > b[1]),
		maskInt(a[2] > b[2]),
		maskInt(a[3] > b[3]),
	}
}

// Less returns a full mask where a < b.
func (a I32x4) Less(b I32x4) I32x4 {
	return I32x4{
		maskInt(a[0] < b[0]),
		maskInt(a[1] < b[1]),
		maskInt(a[2] < b[2]),
		maskInt(a[3] < b[3]),
	}
}

// Sum adds the lanes in order 0..3 with wrapping arithmetic.
func (a I32x4) Sum() int32 {
	return a[0] + a[1] + a[2] + a[3]
}

// AnyMask reports whether any lane has a nonzero bit pattern.
func (a I32x4) AnyMask() bool {
	return a[0]|a[1]|a[2]|a[3] != 0
}

// AsFloat reinterprets the lane bits as float32.
func (a I32x4) AsFloat() F32x4 {
	return F32x4{
		fromBits(uint32(a[0])),
		fromBits(uint32(a[1])),
		fromBits(uint32(a[2])),
		fromBits(uint32(a[3])),
	}
}
