package poly

import "fmt"

// Int is four int32 lanes. The zero value has every lane zero.
type Int struct {
	v intLanes
}

// BroadcastInt returns an Int with every lane set to v.
func BroadcastInt(v int32) Int {
	return Int{broadcastIntLanes(v)}
}

// NewInt returns an Int with lanes (a, b, c, d) in order 0..3.
func NewInt(a, b, c, d int32) Int {
	arr := [Lanes]int32{a, b, c, d}
	return Int{loadIntLanes(&arr)}
}

// LoadInt returns the first Lanes elements of s. It panics if len(s) < Lanes.
func LoadInt(s []int32) Int {
	return Int{loadIntLanes((*[Lanes]int32)(s))}
}

// Store writes the lanes to s[0:Lanes]. It panics if len(s) < Lanes.
func (a Int) Store(s []int32) {
	*(*[Lanes]int32)(s) = a.v.Array()
}

// Array returns the lanes in order.
func (a Int) Array() [Lanes]int32 {
	return a.v.Array()
}

// Get returns the bit pattern of lane i.
func (a Int) Get(i int) uint32 {
	return uint32(a.v.Lane(i))
}

// Lane returns lane i as a signed value.
func (a Int) Lane(i int) int32 {
	return a.v.Lane(i)
}

// Set replaces the bit pattern of lane i.
func (a *Int) Set(i int, v uint32) {
	a.v = a.v.WithLane(i, int32(v))
}

// SetLane replaces lane i.
func (a *Int) SetLane(i int, v int32) {
	a.v = a.v.WithLane(i, v)
}

// Add returns a + b per lane. Overflow wraps.
func (a Int) Add(b Int) Int { return Int{a.v.Add(b.v)} }

// Sub returns a - b per lane. Overflow wraps.
func (a Int) Sub(b Int) Int { return Int{a.v.Sub(b.v)} }

// Neg returns -a per lane. The most negative int32 is its own negation.
func (a Int) Neg() Int { return Int{a.v.Neg()} }

// Mul returns the low 32 bits of a * b per lane.
func (a Int) Mul(b Int) Int { return Int{a.v.Mul(b.v)} }

// And returns a AND b per lane.
func (a Int) And(b Int) Int { return Int{a.v.And(b.v)} }

// Or returns a OR b per lane.
func (a Int) Or(b Int) Int { return Int{a.v.Or(b.v)} }

// Xor returns a XOR b per lane.
func (a Int) Xor(b Int) Int { return Int{a.v.Xor(b.v)} }

// AndNot returns a AND NOT b.
func (a Int) AndNot(b Int) Int { return Int{a.v.AndNot(b.v)} }

// Not inverts every bit.
func (a Int) Not() Int { return Int{a.v.Not()} }

// Min returns the signed minimum per lane.
func (a Int) Min(b Int) Int { return Int{a.v.Min(b.v)} }

// Max returns the signed maximum per lane.
func (a Int) Max(b Int) Int { return Int{a.v.Max(b.v)} }

// Equal returns a mask of the lanes where a == b.
func (a Int) Equal(b Int) Int { return Int{a.v.Equal(b.v)} }

// Greater returns a mask of the lanes where a > b (signed).
func (a Int) Greater(b Int) Int { return Int{a.v.Greater(b.v)} }

// Less returns a mask of the lanes where a < b (signed).
func (a Int) Less(b Int) Int { return Int{a.v.Less(b.v)} }

// Sum returns lane0 + lane1 + lane2 + lane3 with wrapping arithmetic.
func (a Int) Sum() int32 { return a.v.Sum() }

// AnyMask reports whether any lane is nonzero.
func (a Int) AnyMask() bool { return a.v.AnyMask() }

// AsFloat reinterprets the lane bits as a Float.
func (a Int) AsFloat() Float { return Float{a.v.AsFloat()} }

// ToFloat converts each lane to the nearest float32.
func (a Int) ToFloat() Float {
	arr := a.v.Array()
	return NewFloat(float32(arr[0]), float32(arr[1]), float32(arr[2]), float32(arr[3]))
}

// SelectInt returns a in the lanes where mask is set and b elsewhere.
// mask is expected to come from Equal, Greater or Less.
func SelectInt(mask, a, b Int) Int {
	return a.And(mask).Or(b.AndNot(mask))
}

// String formats the lanes as signed integers.
func (a Int) String() string {
	arr := a.v.Array()
	return fmt.Sprintf("Int(%d, %d, %d, %d)", arr[0], arr[1], arr[2], arr[3])
}
