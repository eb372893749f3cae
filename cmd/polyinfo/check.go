package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-polyvec/internal/fixture"
	"github.com/cwbudde/algo-polyvec/internal/lanes/generic"
	"github.com/cwbudde/algo-polyvec/poly"
)

type checkResult struct {
	name string
	err  error
}

type check struct {
	name string
	fn   func(ops *fixture.Operands, rounds int) error
}

var checks = []check{
	{"mask law", checkMaskLaw},
	{"comparison masks", checkComparisonMasks},
	{"reductions", checkReductions},
	{"min/max", checkMinMax},
	{"broadcast round trip", checkBroadcast},
	{"int matches generic", checkIntEquivalence},
	{"float matches generic", checkFloatEquivalence},
}

// runChecks runs every check with its own operand stream so results do not
// depend on check order.
func runChecks(seed int64, rounds int) []checkResult {
	results := make([]checkResult, 0, len(checks))
	for i, c := range checks {
		ops := fixture.NewOperands(seed + int64(i))
		results = append(results, checkResult{name: c.name, err: c.fn(ops, rounds)})
	}
	return results
}

func checkMaskLaw(_ *fixture.Operands, _ int) error {
	a := poly.NewInt(1, 2, 3, 4)
	b := poly.NewInt(1, 5, 3, 6)
	if got, want := poly.SelectInt(a.Equal(b), a, b).Array(), [4]int32{1, 5, 3, 6}; got != want {
		return fmt.Errorf("int select(equal) = %v, want %v", got, want)
	}
	fa := poly.NewFloat(1, 2, 3, 4)
	fb := poly.NewFloat(1, 5, 3, 6)
	if got, want := poly.SelectFloat(fa.Equal(fb), fa, fb).Array(), [4]float32{1, 5, 3, 6}; got != want {
		return fmt.Errorf("float select(equal) = %v, want %v", got, want)
	}
	if got, want := a.Equal(b).Array(), [4]int32{-1, 0, -1, 0}; got != want {
		return fmt.Errorf("equal mask = %v, want %v", got, want)
	}
	return nil
}

func fullOrEmpty(m poly.Int) error {
	for i := range poly.Lanes {
		if v := m.Get(i); v != 0 && v != poly.FullMask {
			return fmt.Errorf("lane %d = %#08x", i, v)
		}
	}
	return nil
}

func checkComparisonMasks(ops *fixture.Operands, rounds int) error {
	for r := range rounds {
		a, b := poly.NewInt(unpack(ops.Int32x4())), poly.NewInt(unpack(ops.Int32x4()))
		for _, m := range []poly.Int{a.Equal(b), a.Greater(b), a.Less(b), a.Equal(a)} {
			if err := fullOrEmpty(m); err != nil {
				return fmt.Errorf("round %d int %v vs %v: %w", r, a, b, err)
			}
		}
		fa, fb := poly.NewFloat(unpackf(ops.Float32x4())), poly.NewFloat(unpackf(ops.Float32x4()))
		for _, m := range []poly.Float{fa.Equal(fb), fa.Greater(fb), fa.Less(fb)} {
			if err := fullOrEmpty(m.AsInt()); err != nil {
				return fmt.Errorf("round %d float %v vs %v: %w", r, fa, fb, err)
			}
		}
	}
	nan := poly.BroadcastFloat(float32(math.NaN()))
	if nan.Equal(nan).AnyMask() || nan.Greater(poly.Float{}).AnyMask() || nan.Less(poly.Float{}).AnyMask() {
		return fmt.Errorf("NaN comparison produced a set lane")
	}
	return nil
}

func checkReductions(_ *fixture.Operands, _ int) error {
	if got := poly.NewInt(1, 2, 3, 4).Sum(); got != 10 {
		return fmt.Errorf("int sum = %d, want 10", got)
	}
	if got := poly.NewFloat(1.5, 2.5, -1, 0).Sum(); got != 3 {
		return fmt.Errorf("float sum = %g, want 3", got)
	}
	if (poly.Int{}).AnyMask() || (poly.Float{}).AnyMask() {
		return fmt.Errorf("zero vector reported a set lane")
	}
	if !poly.NewInt(0, 0, 0, 1).AnyMask() {
		return fmt.Errorf("int (0, 0, 0, 1) reported no set lane")
	}
	if !poly.BroadcastFloat(float32(math.Copysign(0, -1))).AnyMask() {
		return fmt.Errorf("float -0 reported no set lane")
	}
	return nil
}

func checkMinMax(_ *fixture.Operands, _ int) error {
	a := poly.NewInt(1, 5, 3, 2)
	b := poly.NewInt(4, 2, 3, 0)
	if got, want := a.Max(b).Array(), [4]int32{4, 5, 3, 2}; got != want {
		return fmt.Errorf("int max = %v, want %v", got, want)
	}
	if got, want := a.Min(b).Array(), [4]int32{1, 2, 3, 0}; got != want {
		return fmt.Errorf("int min = %v, want %v", got, want)
	}
	fa := poly.NewFloat(1, 5, 3, 2)
	fb := poly.NewFloat(4, 2, 3, 0)
	if got, want := fa.Max(fb).Array(), [4]float32{4, 5, 3, 2}; got != want {
		return fmt.Errorf("float max = %v, want %v", got, want)
	}
	if got, want := fa.Min(fb).Array(), [4]float32{1, 2, 3, 0}; got != want {
		return fmt.Errorf("float min = %v, want %v", got, want)
	}

	// NaN lanes and ±0 pairs give the second operand, in either order.
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	x := poly.NewFloat(nan, 1, negZero, 0)
	y := poly.NewFloat(2, nan, 0, negZero)
	for _, p := range [][2]poly.Float{{x, y}, {y, x}} {
		want := fixture.Bits4(p[1].Array())
		if got := fixture.Bits4(p[0].Max(p[1]).Array()); got != want {
			return fmt.Errorf("float max(%v, %v) = %#08x, want %#08x", p[0], p[1], got, want)
		}
		if got := fixture.Bits4(p[0].Min(p[1]).Array()); got != want {
			return fmt.Errorf("float min(%v, %v) = %#08x, want %#08x", p[0], p[1], got, want)
		}
	}
	return nil
}

func checkBroadcast(_ *fixture.Operands, _ int) error {
	for _, v := range []int32{0, -1, -12345, math.MinInt32, math.MaxInt32} {
		x := poly.BroadcastInt(v)
		for i := range poly.Lanes {
			if x.Lane(i) != v {
				return fmt.Errorf("int broadcast %d: lane %d = %d", v, i, x.Lane(i))
			}
		}
	}
	for _, v := range []float32{0, -2.5, math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32} {
		x := poly.BroadcastFloat(v)
		for i := range poly.Lanes {
			if math.Float32bits(x.Get(i)) != math.Float32bits(v) {
				return fmt.Errorf("float broadcast %g: lane %d = %g", v, i, x.Get(i))
			}
		}
	}
	return nil
}

// checkIntEquivalence compares the compiled backend with the scalar reference.
// With the generic backend compiled in it is trivially true.
func checkIntEquivalence(ops *fixture.Operands, rounds int) error {
	for r := range rounds {
		av, bv := ops.Int32x4(), ops.Int32x4()
		a, b := poly.NewInt(unpack(av)), poly.NewInt(unpack(bv))
		ra, rb := generic.I32x4(av), generic.I32x4(bv)
		pairs := []struct {
			op        string
			got, want [4]int32
		}{
			{"add", a.Add(b).Array(), ra.Add(rb).Array()},
			{"sub", a.Sub(b).Array(), ra.Sub(rb).Array()},
			{"mul", a.Mul(b).Array(), ra.Mul(rb).Array()},
			{"neg", a.Neg().Array(), ra.Neg().Array()},
			{"xor", a.Xor(b).Array(), ra.Xor(rb).Array()},
			{"andnot", a.AndNot(b).Array(), ra.AndNot(rb).Array()},
			{"min", a.Min(b).Array(), ra.Min(rb).Array()},
			{"max", a.Max(b).Array(), ra.Max(rb).Array()},
			{"greater", a.Greater(b).Array(), ra.Greater(rb).Array()},
			{"less", a.Less(b).Array(), ra.Less(rb).Array()},
		}
		for _, p := range pairs {
			if p.got != p.want {
				return fmt.Errorf("round %d %s(%v, %v) = %v, want %v", r, p.op, av, bv, p.got, p.want)
			}
		}
		if a.Sum() != ra.Sum() {
			return fmt.Errorf("round %d sum(%v) = %d, want %d", r, av, a.Sum(), ra.Sum())
		}
	}
	return nil
}

func checkFloatEquivalence(ops *fixture.Operands, rounds int) error {
	for r := range rounds {
		av, bv := ops.Float32x4(), ops.Float32x4()
		a, b := poly.NewFloat(unpackf(av)), poly.NewFloat(unpackf(bv))
		ra, rb := generic.F32x4(av), generic.F32x4(bv)
		pairs := []struct {
			op        string
			got, want [4]float32
			// nanAlike accepts any NaN for a NaN; arithmetic may pick either payload.
			nanAlike bool
		}{
			{"add", a.Add(b).Array(), ra.Add(rb).Array(), true},
			{"mul", a.Mul(b).Array(), ra.Mul(rb).Array(), true},
			{"neg", a.Neg().Array(), ra.Neg().Array(), false},
			{"or", a.Or(b).Array(), ra.Or(rb).Array(), false},
			{"not", a.Not().Array(), ra.Not().Array(), false},
			{"equal", a.Equal(b).Array(), ra.Equal(rb).Array(), false},
			{"greater", a.Greater(b).Array(), ra.Greater(rb).Array(), false},
			{"min", a.Min(b).Array(), ra.Min(rb).Array(), false},
			{"max", a.Max(b).Array(), ra.Max(rb).Array(), false},
			{"min swapped", b.Min(a).Array(), rb.Min(ra).Array(), false},
			{"max swapped", b.Max(a).Array(), rb.Max(ra).Array(), false},
		}
		for _, p := range pairs {
			same := fixture.Bits4(p.got) == fixture.Bits4(p.want)
			if p.nanAlike {
				same = fixture.SameLanes(p.got, p.want)
			}
			if !same {
				return fmt.Errorf("round %d %s(%v, %v) = %v, want %v", r, p.op, av, bv, p.got, p.want)
			}
		}
	}
	return nil
}

func unpack(v [4]int32) (int32, int32, int32, int32) { return v[0], v[1], v[2], v[3] }

func unpackf(v [4]float32) (float32, float32, float32, float32) { return v[0], v[1], v[2], v[3] }
