//go:build !purego && amd64 && amd64.v3 && goexperiment.simd

package poly

import "github.com/cwbudde/algo-polyvec/internal/lanes/avx"

// Backend names the lane implementation compiled into this binary.
const Backend = "avx"

type (
	intLanes   = avx.I32x4
	floatLanes = avx.F32x4
)

func loadIntLanes(p *[Lanes]int32) intLanes { return avx.LoadI32x4(p) }

func broadcastIntLanes(v int32) intLanes { return avx.BroadcastI32x4(v) }

func loadFloatLanes(p *[Lanes]float32) floatLanes { return avx.LoadF32x4(p) }

func broadcastFloatLanes(v float32) floatLanes { return avx.BroadcastF32x4(v) }
