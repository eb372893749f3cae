package generic

import (
	"math"

	"github.com/cwbudde/algo-polyvec/internal/lanes"
)

// maskInt widens a boolean to an all-ones or all-zeros lane. The int32 view
// of lanes.FullMask is -1.
func maskInt(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

func maskBits(b bool) uint32 {
	if b {
		return lanes.FullMask
	}
	return 0
}

func bits(f float32) uint32 { return math.Float32bits(f) }

func fromBits(u uint32) float32 { return math.Float32frombits(u) }
