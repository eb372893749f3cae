package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	sinkAllocInt   Int
	sinkAllocFloat Float
	sinkAllocI32   int32
	sinkAllocF32   float32
	sinkAllocBool  bool
)

func TestNoAllocs(t *testing.T) {
	ibuf := []int32{1, -2, 3, -4}
	fbuf := []float32{0.5, -1.5, 2.5, -3.5}

	tests := map[string]func(){
		"int arithmetic": func() {
			a := LoadInt(ibuf)
			b := BroadcastInt(7)
			sinkAllocInt = a.Add(b).Sub(a).Mul(b).Neg().Min(a).Max(b)
		},
		"int select": func() {
			a, b := LoadInt(ibuf), BroadcastInt(3)
			sinkAllocInt = SelectInt(a.Greater(b), a, b.Xor(a).AndNot(a).Or(a.Not()))
		},
		"int set and store": func() {
			a := NewInt(1, 2, 3, 4)
			a.Set(1, FullMask)
			a.SetLane(2, -9)
			a.Store(ibuf)
			sinkAllocInt = a
		},
		"float arithmetic": func() {
			a := LoadFloat(fbuf)
			b := BroadcastFloat(0.25)
			sinkAllocFloat = a.Add(b).Sub(b).Mul(b).Neg().Abs().Min(a).Max(b)
		},
		"float select": func() {
			a, b := LoadFloat(fbuf), BroadcastFloat(1)
			sinkAllocFloat = SelectFloat(a.Less(b).Or(a.Equal(b)), a, b.And(a.Not()).Xor(b))
		},
		"float set and store": func() {
			a := NewFloat(1, 2, 3, 4)
			a.Set(3, -1)
			a.Store(fbuf)
			sinkAllocFloat = a
		},
		"reductions": func() {
			sinkAllocI32 = LoadInt(ibuf).Sum()
			sinkAllocF32 = LoadFloat(fbuf).Sum()
			sinkAllocBool = LoadInt(ibuf).AnyMask() || LoadFloat(fbuf).AnyMask()
		},
		"conversions": func() {
			sinkAllocInt = LoadFloat(fbuf).AsInt().Add(LoadFloat(fbuf).ToInt())
			sinkAllocFloat = LoadInt(ibuf).AsFloat().Add(LoadInt(ibuf).ToFloat())
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, testing.AllocsPerRun(200, fn))
		})
	}
}
