package poly

import "fmt"

// Float is four float32 lanes. The zero value has every lane +0.
type Float struct {
	v floatLanes
}

// BroadcastFloat returns a Float with every lane set to v.
func BroadcastFloat(v float32) Float {
	return Float{broadcastFloatLanes(v)}
}

// NewFloat returns a Float with lanes (a, b, c, d) in order 0..3.
func NewFloat(a, b, c, d float32) Float {
	arr := [Lanes]float32{a, b, c, d}
	return Float{loadFloatLanes(&arr)}
}

// LoadFloat returns the first Lanes elements of s. It panics if len(s) < Lanes.
func LoadFloat(s []float32) Float {
	return Float{loadFloatLanes((*[Lanes]float32)(s))}
}

// Store writes the lanes to s[0:Lanes]. It panics if len(s) < Lanes.
func (a Float) Store(s []float32) {
	*(*[Lanes]float32)(s) = a.v.Array()
}

// Array returns the lanes in order.
func (a Float) Array() [Lanes]float32 {
	return a.v.Array()
}

// Get returns lane i.
func (a Float) Get(i int) float32 {
	return a.v.Lane(i)
}

// Set replaces lane i.
func (a *Float) Set(i int, v float32) {
	a.v = a.v.WithLane(i, v)
}

// Add returns a + b per lane under IEEE rules.
func (a Float) Add(b Float) Float { return Float{a.v.Add(b.v)} }

// Sub returns a - b per lane under IEEE rules.
func (a Float) Sub(b Float) Float { return Float{a.v.Sub(b.v)} }

// Neg flips the sign bit of every lane, so Neg(+0) is -0.
func (a Float) Neg() Float { return Float{a.v.Neg()} }

// Mul returns a * b per lane under IEEE rules.
func (a Float) Mul(b Float) Float { return Float{a.v.Mul(b.v)} }

// And combines the bit patterns of a and b. The result may be any IEEE
// pattern, NaN and denormals included.
// And returns a AND b on bit patterns.
func (a Float) And(b Float) Float { return Float{a.v.And(b.v)} }

// Or returns a OR b on bit patterns.
func (a Float) Or(b Float) Float { return Float{a.v.Or(b.v)} }

// Xor returns a XOR b on bit patterns.
func (a Float) Xor(b Float) Float { return Float{a.v.Xor(b.v)} }

// AndNot returns a AND NOT b on bit patterns.
func (a Float) AndNot(b Float) Float { return Float{a.v.AndNot(b.v)} }

// Not inverts every bit.
func (a Float) Not() Float { return Float{a.v.Not()} }

// Abs clears the sign bit of every lane.
func (a Float) Abs() Float {
	return a.And(BroadcastInt(int32(NotSignMask)).AsFloat())
}

// Min returns a where a < b and b otherwise. When either lane is NaN, or the
// lanes are -0 and +0, the lane of b is returned unchanged.
func (a Float) Min(b Float) Float { return Float{a.v.Min(b.v)} }

// Max returns a where a > b and b otherwise, with the same NaN and signed
// zero caveat as Min.
func (a Float) Max(b Float) Float { return Float{a.v.Max(b.v)} }

// Equal returns a mask of the lanes where a == b. NaN compares unequal.
func (a Float) Equal(b Float) Float { return Float{a.v.Equal(b.v)} }

// Greater returns a mask of the lanes where a > b. NaN compares false.
func (a Float) Greater(b Float) Float { return Float{a.v.Greater(b.v)} }

// Less returns a mask of the lanes where a < b. NaN compares false.
func (a Float) Less(b Float) Float { return Float{a.v.Less(b.v)} }

// Sum returns ((lane0 + lane1) + lane2) + lane3. Other summation orders can
// round differently.
func (a Float) Sum() float32 { return a.v.Sum() }

// AnyMask reports whether any lane has a nonzero bit pattern. A lane holding
// -0 or a denormal counts as set.
func (a Float) AnyMask() bool { return a.v.AnyMask() }

// AsInt reinterprets the lane bits as an Int.
func (a Float) AsInt() Int { return Int{a.v.AsInt()} }

// ToInt converts each lane to int32, truncating toward zero. NaN and values
// outside the int32 range give an implementation-specific result.
func (a Float) ToInt() Int {
	arr := a.v.Array()
	return NewInt(int32(arr[0]), int32(arr[1]), int32(arr[2]), int32(arr[3]))
}

// SelectFloat returns a in the lanes where mask is set and b elsewhere.
// mask is expected to come from Equal, Greater or Less.
func SelectFloat(mask, a, b Float) Float {
	return a.And(mask).Or(b.AndNot(mask))
}

// String formats the lanes with %g.
func (a Float) String() string {
	arr := a.v.Array()
	return fmt.Sprintf("Float(%g, %g, %g, %g)", arr[0], arr[1], arr[2], arr[3])
}
