package generic

import "github.com/cwbudde/algo-polyvec/internal/lanes"

var (
	_ lanes.IntOps[I32x4, F32x4]   = I32x4{}
	_ lanes.FloatOps[F32x4, I32x4] = F32x4{}
)
