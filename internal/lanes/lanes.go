// Package lanes defines the contract shared by the 4-lane backends.
//
// A backend provides two concrete value types, one holding four int32 lanes and
// one holding four float32 lanes. Exactly one backend is bound into package poly
// per build; the choice is made with build tags, never at runtime. Each backend
// asserts at compile time that its types satisfy IntOps and FloatOps, so a
// missing or misspelled operation is a build failure rather than a silent gap.
//
// Comparison results are masks: a true lane has every bit set, a false lane has
// every bit clear. Bitwise operations on float lanes act on the IEEE bit pattern.
package lanes

// Count is the fixed number of lanes in every vector.
const Count = 4

// Bit patterns used by both backends.
const (
	FullMask    uint32 = 0xFFFFFFFF
	SignMask    uint32 = 0x80000000
	NotSignMask uint32 = FullMask ^ SignMask
)

// IntOps is the operation set of a 4 x int32 backend type I whose bit-layout
// twin is F.
type IntOps[I, F any] interface {
	// Array returns the lanes in order 0..3.
	Array() [Count]int32
	// Lane returns lane i. i must be in [0, Count).
	Lane(i int) int32
	// WithLane returns a copy with lane i replaced by v.
	WithLane(i int, v int32) I

	Add(I) I
	Sub(I) I
	Neg() I
	Mul(I) I

	And(I) I
	Or(I) I
	Xor(I) I
	AndNot(I) I
	Not() I

	Min(I) I
	Max(I) I

	Equal(I) I
	Greater(I) I
	Less(I) I

	Sum() int32
	AnyMask() bool

	// AsFloat reinterprets the lane bits as float32 lanes.
	AsFloat() F
}

// FloatOps is the operation set of a 4 x float32 backend type F whose
// bit-layout twin is I.
type FloatOps[F, I any] interface {
	Array() [Count]float32
	Lane(i int) float32
	WithLane(i int, v float32) F

	Add(F) F
	Sub(F) F
	Neg() F
	Mul(F) F

	And(F) F
	Or(F) F
	Xor(F) F
	AndNot(F) F
	Not() F

	Min(F) F
	Max(F) F

	Equal(F) F
	Greater(F) F
	Less(F) F

	Sum() float32
	AnyMask() bool

	// AsInt reinterprets the lane bits as int32 lanes.
	AsInt() I
}
