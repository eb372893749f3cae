package poly_test

import (
	"fmt"

	"github.com/cwbudde/algo-polyvec/poly"
)

func ExampleSelectFloat() {
	x := poly.NewFloat(0.2, -0.7, 1.4, -2.5)
	limit := poly.BroadcastFloat(1)

	over := x.Abs().Greater(limit)
	clipped := poly.SelectFloat(over, limit, x.Abs())
	fmt.Println(clipped)
	// Output: Float(0.2, 0.7, 1, 1)
}

func ExampleInt_Equal() {
	a := poly.NewInt(1, 2, 3, 4)
	b := poly.NewInt(1, 5, 3, 6)
	mask := a.Equal(b)

	fmt.Printf("%#x %#x\n", mask.Get(0), mask.Get(1))
	fmt.Println(poly.SelectInt(mask, a, poly.Int{}))
	// Output:
	// 0xffffffff 0x0
	// Int(1, 0, 3, 0)
}

func ExampleFloat_AnyMask() {
	voices := poly.NewFloat(0, 0, 0.3, 0)
	active := voices.Greater(poly.BroadcastFloat(0))
	fmt.Println(active.AnyMask(), voices.Sum())
	// Output: true 0.3
}
