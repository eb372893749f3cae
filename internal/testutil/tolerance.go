// Package testutil holds assertion helpers for float32 sample blocks and lanes.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-polyvec/internal/fixture"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireSameBits fails t if got and want differ in length or in the bit
// pattern of any element. NaN payloads and signed zeros are compared exactly.
func RequireSameBits(t *testing.T, got, want []float32) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		require.Equal(t, math.Float32bits(want[i]), math.Float32bits(got[i]), "index %d: got %v, want %v", i, got[i], want[i])
	}
}

// RequireSameLanes fails t unless got and want match under fixture.SameLanes:
// bit for bit, except that any NaN matches any NaN.
func RequireSameLanes(t *testing.T, got, want [4]float32, msg string, args ...any) {
	t.Helper()
	require.True(t, fixture.SameLanes(got, want), "%s: got %#08x, want %#08x",
		fmt.Sprintf(msg, args...), fixture.Bits4(got), fixture.Bits4(want))
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), "index %d: non-finite value %v", i, v)
	}
}
