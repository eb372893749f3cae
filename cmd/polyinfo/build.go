package main

import (
	"runtime"
	"runtime/debug"

	"github.com/cwbudde/algo-polyvec/poly"
)

type buildInfo struct {
	backend    string
	lanes      int
	goarch     string
	goamd64    string
	experiment string
	tags       string
}

func describeBuild() buildInfo {
	b := buildInfo{
		backend: poly.Backend,
		lanes:   poly.Lanes,
		goarch:  runtime.GOARCH,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "GOAMD64":
			b.goamd64 = s.Value
		case "GOEXPERIMENT":
			b.experiment = s.Value
		case "-tags":
			b.tags = s.Value
		}
	}
	return b
}
