package block

import (
	"testing"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-polyvec/internal/fixture"
)

func BenchmarkMixBlock(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(sizeStr(n), func(b *testing.B) {
			dst := make([]float32, n)
			src := fixture.DeterministicNoise(1, 1, n)
			b.ReportAllocs()
			b.SetBytes(int64(n) * 4 * 2)
			for i := 0; i < b.N; i++ {
				MixBlock(dst, src, 0.5)
			}
		})
	}
}

func BenchmarkAddBlock(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(sizeStr(n), func(b *testing.B) {
			dst := make([]float32, n)
			a := fixture.DeterministicNoise(1, 1, n)
			c := fixture.DeterministicNoise(2, 1, n)
			b.ReportAllocs()
			b.SetBytes(int64(n) * 4 * 3)
			for i := 0; i < b.N; i++ {
				AddBlock(dst, a, c)
			}
		})
	}
}

// BenchmarkAddBlockVecmath is the float64 reference kernel on the same sizes.
func BenchmarkAddBlockVecmath(b *testing.B) {
	for _, n := range []int{64, 256, 1024} {
		b.Run(sizeStr(n), func(b *testing.B) {
			dst := make([]float64, n)
			a := fixture.Widen(fixture.DeterministicNoise(1, 1, n))
			c := fixture.Widen(fixture.DeterministicNoise(2, 1, n))
			b.ReportAllocs()
			b.SetBytes(int64(n) * 8 * 3)
			for i := 0; i < b.N; i++ {
				vecmath.AddBlock(dst, a, c)
			}
		})
	}
}
