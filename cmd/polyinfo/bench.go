package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-polyvec/internal/fixture"
	"github.com/cwbudde/algo-polyvec/poly/block"
)

type benchResult struct {
	name    string
	elapsed time.Duration
	iters   int
}

func (r benchResult) nsPerSample(n int) float64 {
	return float64(r.elapsed.Nanoseconds()) / float64(r.iters*n)
}

type benchReport struct {
	results []benchResult
	// addErr is the largest |block.AddBlock - vecmath.AddBlock| over the block.
	addErr float64
}

// runBench times the float32 block kernels against the float64 vecmath
// kernels they are tested against.
func runBench(n, iters int) (benchReport, error) {
	a32 := fixture.DeterministicSine(440, 48000, 0.8, n)
	b32 := fixture.DeterministicNoise(7, 0.5, n)
	dst32 := make([]float32, n)
	a64, b64 := fixture.Widen(a32), fixture.Widen(b32)
	dst64 := make([]float64, n)

	results := []benchResult{
		timeKernel("block.AddBlock", iters, func() { block.AddBlock(dst32, a32, b32) }),
		timeKernel("block.MixBlock", iters, func() { block.MixBlock(dst32, b32, 0.25) }),
		timeKernel("block.Sum", iters, func() { _ = block.Sum(a32) }),
		timeKernel("vecmath.AddBlock", iters, func() { vecmath.AddBlock(dst64, a64, b64) }),
		timeKernel("vecmath.Sum", iters, func() { _ = vecmath.Sum(a64) }),
	}

	block.AddBlock(dst32, a32, b32)
	vecmath.AddBlock(dst64, a64, b64)
	narrowed := make([]float32, n)
	for i, v := range dst64 {
		narrowed[i] = float32(v)
	}
	addErr, err := fixture.MaxAbsDiff(dst32, narrowed)
	if err != nil {
		return benchReport{}, fmt.Errorf("compare AddBlock: %w", err)
	}
	return benchReport{results: results, addErr: addErr}, nil
}

func timeKernel(name string, iters int, fn func()) benchResult {
	fn()
	start := time.Now()
	for range iters {
		fn()
	}
	return benchResult{name: name, elapsed: time.Since(start), iters: iters}
}

func printBench(w io.Writer, n int, report benchReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel (n=%d)\tTotal\tns/sample\n", n); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t---------\n"); err != nil {
		return err
	}
	for _, r := range report.results {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.3f\n", r.name, r.elapsed.Round(time.Microsecond), r.nsPerSample(n)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(tw, "\nAddBlock max |err| vs float64\t%g\n", report.addErr); err != nil {
		return err
	}
	return tw.Flush()
}
