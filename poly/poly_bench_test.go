package poly

import "testing"

var (
	sinkFloat Float
	sinkInt   Int
	sinkSum   float32
)

func BenchmarkFloatMulAdd(b *testing.B) {
	x := BroadcastFloat(0.25)
	g := NewFloat(0.999, 0.998, 0.997, 0.996)
	o := BroadcastFloat(0.001)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x = x.Mul(g).Add(o)
	}
	sinkFloat = x
}

func BenchmarkFloatSelect(b *testing.B) {
	x := NewFloat(0.5, 1.5, -0.5, -1.5)
	lim := BroadcastFloat(1)
	step := BroadcastFloat(0.0001)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x = x.Add(step)
		x = SelectFloat(x.Greater(lim), lim.Neg(), x)
	}
	sinkFloat = x
}

func BenchmarkIntPhaseAccumulate(b *testing.B) {
	phase := Int{}
	inc := NewInt(1<<20, 3<<19, 5<<18, 7<<17)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		phase = phase.Add(inc)
	}
	sinkInt = phase
}

func BenchmarkFloatSum(b *testing.B) {
	x := NewFloat(0.1, 0.2, 0.3, 0.4)
	var s float32
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s += x.Sum()
	}
	sinkSum = s
}
