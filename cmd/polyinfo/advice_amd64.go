//go:build amd64

package main

import (
	xcpu "golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-polyvec/poly"
)

// hostIsV3 approximates the x86-64-v3 level with the features x/sys/cpu exposes.
func hostIsV3() bool {
	return xcpu.X86.HasAVX && xcpu.X86.HasAVX2 && xcpu.X86.HasBMI1 && xcpu.X86.HasBMI2 && xcpu.X86.HasFMA
}

func backendAdvice() string {
	switch {
	case poly.Backend == "avx":
		return ""
	case hostIsV3():
		return "host is x86-64-v3 capable; rebuild with GOAMD64=v3 GOEXPERIMENT=simd for the avx backend"
	default:
		return "host lacks x86-64-v3; generic is the only backend for it"
	}
}
