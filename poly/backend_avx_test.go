//go:build !purego && amd64 && amd64.v3 && goexperiment.simd

package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-polyvec/poly"
)

func TestAVXBackendSelected(t *testing.T) {
	assert.Equal(t, "avx", poly.Backend)
}
