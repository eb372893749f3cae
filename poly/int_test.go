package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntZeroValue(t *testing.T) {
	var z Int
	assert.Equal(t, [Lanes]int32{}, z.Array())
	assert.False(t, z.AnyMask())
}

func TestIntConstruction(t *testing.T) {
	v := NewInt(1, -2, 3, -4)
	assert.Equal(t, [Lanes]int32{1, -2, 3, -4}, v.Array())

	src := []int32{9, 8, 7, 6, 5}
	assert.Equal(t, [Lanes]int32{9, 8, 7, 6}, LoadInt(src).Array())

	dst := make([]int32, 5)
	v.Store(dst)
	assert.Equal(t, []int32{1, -2, 3, -4, 0}, dst)
}

func TestIntBroadcastRoundTrip(t *testing.T) {
	for _, x := range []int32{0, 1, -1, 12345, -98765, math.MaxInt32, math.MinInt32} {
		v := BroadcastInt(x)
		for i := 0; i < Lanes; i++ {
			require.Equal(t, x, v.Lane(i), "lane %d of broadcast %d", i, x)
			require.Equal(t, uint32(x), v.Get(i), "lane %d bits of broadcast %d", i, x)
		}
	}
}

func TestIntSet(t *testing.T) {
	v := NewInt(1, 2, 3, 4)
	v.Set(1, 0xFFFFFFFF)
	v.SetLane(3, -7)

	assert.Equal(t, [Lanes]int32{1, -1, 3, -7}, v.Array())
	assert.Equal(t, uint32(0xFFFFFFFF), v.Get(1))
}

func TestIntSetOutOfRangePanics(t *testing.T) {
	v := NewInt(1, 2, 3, 4)
	assert.Panics(t, func() { v.Set(Lanes, 1) })
	assert.Panics(t, func() { _ = v.Get(-1) })
}

func TestIntArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Int
		want [Lanes]int32
	}{
		{"add", NewInt(1, 2, 3, 4).Add(NewInt(10, 20, 30, 40)), [Lanes]int32{11, 22, 33, 44}},
		{"add wraps", BroadcastInt(math.MaxInt32).Add(BroadcastInt(1)), [Lanes]int32{math.MinInt32, math.MinInt32, math.MinInt32, math.MinInt32}},
		{"sub", NewInt(1, 2, 3, 4).Sub(NewInt(4, 3, 2, 1)), [Lanes]int32{-3, -1, 1, 3}},
		{"neg", NewInt(0, 1, -5, math.MinInt32).Neg(), [Lanes]int32{0, -1, 5, math.MinInt32}},
		{"mul", NewInt(2, -3, 1<<16, 7).Mul(NewInt(5, 4, 1<<16, -1)), [Lanes]int32{10, -12, 0, -7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Array())
		})
	}
}

func TestIntBitwise(t *testing.T) {
	a := NewInt(0b1100, -1, 0, 0x55555555)
	b := NewInt(0b1010, 0x0F0F, -1, -0x55555556)

	assert.Equal(t, [Lanes]int32{0b1000, 0x0F0F, 0, 0}, a.And(b).Array())
	assert.Equal(t, [Lanes]int32{0b1110, -1, -1, -1}, a.Or(b).Array())
	assert.Equal(t, [Lanes]int32{0b0110, ^0x0F0F, -1, -1}, a.Xor(b).Array())
	assert.Equal(t, [Lanes]int32{0b0100, ^0x0F0F, 0, 0x55555555}, a.AndNot(b).Array())
	assert.Equal(t, [Lanes]int32{^0b1100, 0, -1, -0x55555556}, a.Not().Array())
}

func TestIntComparisonsAreFullMasks(t *testing.T) {
	a := NewInt(1, 2, 3, 4)
	b := NewInt(1, 5, 3, 0)

	assert.Equal(t, [Lanes]int32{-1, 0, -1, 0}, a.Equal(b).Array())
	assert.Equal(t, [Lanes]int32{0, 0, 0, -1}, a.Greater(b).Array())
	assert.Equal(t, [Lanes]int32{0, -1, 0, 0}, a.Less(b).Array())

	signed := NewInt(-1, math.MinInt32, 0, math.MaxInt32)
	assert.Equal(t, [Lanes]int32{0, 0, 0, -1}, signed.Greater(BroadcastInt(0)).Array())
	assert.Equal(t, [Lanes]int32{-1, -1, 0, 0}, signed.Less(BroadcastInt(0)).Array())
}

func TestIntMinMax(t *testing.T) {
	a := NewInt(1, 5, 3, 2)
	b := NewInt(4, 2, 3, 0)

	assert.Equal(t, [Lanes]int32{4, 5, 3, 2}, a.Max(b).Array())
	assert.Equal(t, [Lanes]int32{1, 2, 3, 0}, a.Min(b).Array())
	assert.Equal(t, [Lanes]int32{-1, -1, -1, -1}, BroadcastInt(-1).Max(BroadcastInt(math.MinInt32)).Array())
}

func TestIntReductions(t *testing.T) {
	assert.Equal(t, int32(10), NewInt(1, 2, 3, 4).Sum())
	assert.Equal(t, int32(math.MinInt32+2), NewInt(math.MaxInt32, 1, 1, 1).Sum())

	assert.False(t, Int{}.AnyMask())
	assert.True(t, NewInt(0, 0, 0, 1).AnyMask())
	assert.True(t, NewInt(math.MinInt32, 0, 0, 0).AnyMask())
}

func TestIntConversions(t *testing.T) {
	bits := NewInt(0x3F800000, 0x40000000, int32(-0x40800000), 0).AsFloat()
	assert.Equal(t, [Lanes]float32{1, 2, -1, 0}, bits.Array())

	num := NewInt(1, -2, 1<<24+1, 0).ToFloat()
	assert.Equal(t, [Lanes]float32{1, -2, 1 << 24, 0}, num.Array())
}

func TestIntString(t *testing.T) {
	assert.Equal(t, "Int(1, -2, 3, -4)", NewInt(1, -2, 3, -4).String())
}
