//go:build !amd64

package main

func backendAdvice() string {
	return "no hardware backend for this GOARCH; generic is the only backend"
}
