//go:build purego || !(amd64 && amd64.v3 && goexperiment.simd)

package poly

import "github.com/cwbudde/algo-polyvec/internal/lanes/generic"

// Backend names the lane implementation compiled into this binary.
const Backend = "generic"

type (
	intLanes   = generic.I32x4
	floatLanes = generic.F32x4
)

func loadIntLanes(p *[Lanes]int32) intLanes { return generic.LoadI32x4(p) }

func broadcastIntLanes(v int32) intLanes { return generic.BroadcastI32x4(v) }

func loadFloatLanes(p *[Lanes]float32) floatLanes { return generic.LoadF32x4(p) }

func broadcastFloatLanes(v float32) floatLanes { return generic.BroadcastF32x4(v) }
