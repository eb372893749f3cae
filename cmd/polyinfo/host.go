package main

import (
	"github.com/cwbudde/algo-vecmath/cpu"
)

type hostInfo struct {
	arch   string
	level  string
	advice string
}

// describeHost reports what the running CPU could support. It is informational
// only: the backend was fixed when the binary was built.
func describeHost() hostInfo {
	f := cpu.DetectFeatures()
	h := hostInfo{arch: f.Architecture, level: simdLevel(f).String()}
	h.advice = backendAdvice()
	return h
}

func simdLevel(f cpu.Features) cpu.SIMDLevel {
	for _, level := range []cpu.SIMDLevel{cpu.SIMDAVX2, cpu.SIMDNEON, cpu.SIMDSSE2} {
		if cpu.Supports(f, level) {
			return level
		}
	}
	return cpu.SIMDNone
}
