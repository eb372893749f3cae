package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	require.Len(t, s, 48)
	// First sample of a sine at phase 0 should be 0.
	assert.Equal(t, float32(0), s[0])
	for i, v := range s {
		assert.True(t, v >= -1 && v <= 1, "s[%d] = %v out of range", i, v)
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	require.Len(t, a, 64)
	assert.Equal(t, a, b)
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	assert.NotEqual(t, DeterministicNoise(1, 1.0, 16), DeterministicNoise(2, 1.0, 16))
}

func TestDC(t *testing.T) {
	assert.Equal(t, []float32{0.5, 0.5, 0.5, 0.5}, DC(0.5, 4))
}

func TestWiden(t *testing.T) {
	assert.Equal(t, []float64{0.5, -2}, Widen([]float32{0.5, -2}))
}
