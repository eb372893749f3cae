package fixture

import (
	"math"
	"math/rand"
)

// Operands produces reproducible lane operands for property and backend
// equivalence checks. Roughly one lane in four is drawn from a table of edge
// values. Float edges include ±0, a denormal and NaNs with quiet and
// signalling payloads, so compare float results with SameLanes.
type Operands struct {
	rng *rand.Rand
}

// NewOperands returns a generator seeded with seed.
func NewOperands(seed int64) *Operands {
	return &Operands{rng: rand.New(rand.NewSource(seed))}
}

var intEdges = []int32{0, 1, -1, 2, math.MaxInt32, math.MinInt32, math.MaxInt16, math.MinInt16}

var floatEdges = []float32{
	0, float32(math.Copysign(0, -1)),
	1, -1, 0.5,
	math.MaxFloat32, -math.MaxFloat32,
	math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
	float32(math.Inf(1)), float32(math.Inf(-1)),
	math.Float32frombits(0x7FC00000), // quiet NaN
	math.Float32frombits(0xFFC12345), // negative quiet NaN with payload
	math.Float32frombits(0x7F800001), // signalling NaN
}

// Int32 returns one lane value.
func (o *Operands) Int32() int32 {
	if o.rng.Intn(4) == 0 {
		return intEdges[o.rng.Intn(len(intEdges))]
	}
	return int32(o.rng.Uint32())
}

// Int32x4 returns four lane values.
func (o *Operands) Int32x4() [4]int32 {
	return [4]int32{o.Int32(), o.Int32(), o.Int32(), o.Int32()}
}

// Float32 returns one lane value, possibly NaN.
func (o *Operands) Float32() float32 {
	if o.rng.Intn(4) == 0 {
		return floatEdges[o.rng.Intn(len(floatEdges))]
	}
	return float32((o.rng.Float64()*2 - 1) * 1000)
}

// Float32x4 returns four lane values.
func (o *Operands) Float32x4() [4]float32 {
	return [4]float32{o.Float32(), o.Float32(), o.Float32(), o.Float32()}
}
