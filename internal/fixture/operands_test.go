package fixture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperandsReproducible(t *testing.T) {
	a, b := NewOperands(7), NewOperands(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int32x4(), b.Int32x4(), "int draw %d", i)
		require.Equal(t, Bits4(a.Float32x4()), Bits4(b.Float32x4()), "float draw %d", i)
	}
}

func TestOperandsCoverFloatEdges(t *testing.T) {
	o := NewOperands(3)
	var nan, negZero, denormal bool
	for i := 0; i < 10000; i++ {
		v := o.Float32()
		bits := math.Float32bits(v)
		nan = nan || math.IsNaN(float64(v))
		negZero = negZero || bits == 0x80000000
		denormal = denormal || (bits&0x7F800000 == 0 && bits&0x007FFFFF != 0)
	}
	assert.True(t, nan, "no NaN drawn")
	assert.True(t, negZero, "no -0 drawn")
	assert.True(t, denormal, "no denormal drawn")
}
