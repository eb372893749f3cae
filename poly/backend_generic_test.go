//go:build purego || !(amd64 && amd64.v3 && goexperiment.simd)

package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-polyvec/poly"
)

func TestGenericBackendSelected(t *testing.T) {
	assert.Equal(t, "generic", poly.Backend)
}
