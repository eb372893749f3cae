package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireHelpersAcceptMatches(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	nan := float32(math.NaN())

	RequireSliceNearlyEqual(t, []float32{1, 2}, []float32{1.0001, 2}, 1e-3)
	RequireSameBits(t, []float32{negZero, nan}, []float32{negZero, nan})
	RequireSameLanes(t, [4]float32{1, nan, negZero, 0}, [4]float32{1, math.Float32frombits(0xFFC00000), negZero, 0}, "lanes")
	RequireFinite(t, []float32{0, -1, math.MaxFloat32})
}

func TestRequireSameLanesTreatsNaNsAlike(t *testing.T) {
	qnan := math.Float32frombits(0x7FC00000)
	snan := math.Float32frombits(0x7F800001)
	assert.NotPanics(t, func() {
		RequireSameLanes(t, [4]float32{qnan, 0, 0, 0}, [4]float32{snan, 0, 0, 0}, "round %d", 1)
	})
}
