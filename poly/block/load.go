package block

import "github.com/cwbudde/algo-polyvec/poly"

// loadTail loads len(s) < poly.Lanes samples, padding the rest with pad.
func loadTail(s []float32, pad float32) poly.Float {
	buf := [poly.Lanes]float32{pad, pad, pad, pad}
	copy(buf[:], s)
	return poly.LoadFloat(buf[:])
}

// storeTail writes the first len(dst) lanes of v.
func storeTail(dst []float32, v poly.Float) {
	arr := v.Array()
	copy(dst, arr[:])
}

// body returns the length of the prefix that splits into whole vectors.
func body(n int) int {
	return n &^ (poly.Lanes - 1)
}

func checkLen(n int, others ...int) {
	for _, m := range others {
		if m != n {
			panic("block: slice length mismatch")
		}
	}
}
