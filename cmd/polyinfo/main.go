// Command polyinfo reports the 4-lane vector backend compiled into this binary
// and checks it against the lane contract.
//
// Usage:
//
//	polyinfo [flags]
//
// Examples:
//
//	polyinfo
//	polyinfo -rounds 100000 -seed 7
//	polyinfo -bench -n 4096 -iters 2000
//	GOAMD64=v3 GOEXPERIMENT=simd go run ./cmd/polyinfo -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
)

type options struct {
	check  bool
	rounds int
	seed   int64
	bench  bool
	n      int
	iters  int
}

var errChecksFailed = errors.New("lane contract checks failed")

func main() {
	check := flag.Bool("check", true, "run the lane contract self checks")
	rounds := flag.Int("rounds", 10000, "randomized operand rounds per check")
	seed := flag.Int64("seed", 1, "seed for randomized operands")
	bench := flag.Bool("bench", false, "time block kernels against the float64 vecmath reference")
	n := flag.Int("n", 1024, "block length in samples for -bench")
	iters := flag.Int("iters", 1000, "iterations per kernel for -bench")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: polyinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Reports the compiled 4-lane backend, host SIMD support and contract checks.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  polyinfo\n")
		fmt.Fprintf(os.Stderr, "  polyinfo -bench -n 4096\n")
		fmt.Fprintf(os.Stderr, "  GOAMD64=v3 GOEXPERIMENT=simd go run ./cmd/polyinfo\n")
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := options{
		check:  *check,
		rounds: *rounds,
		seed:   *seed,
		bench:  *bench,
		n:      *n,
		iters:  *iters,
	}
	if err := run(os.Stdout, logger, opts); err != nil {
		logger.Error("polyinfo failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, opts options) error {
	if opts.rounds < 1 {
		return fmt.Errorf("rounds must be >= 1: %d", opts.rounds)
	}
	if opts.bench && (opts.n < 1 || opts.iters < 1) {
		return fmt.Errorf("bench needs n >= 1 and iters >= 1: n=%d iters=%d", opts.n, opts.iters)
	}

	b := describeBuild()
	h := describeHost()
	logger.Debug("build described", "backend", b.backend, "goarch", b.goarch, "goamd64", b.goamd64, "experiment", b.experiment)
	logger.Debug("host described", "arch", h.arch, "level", h.level)

	if err := printReport(w, b, h); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if opts.check {
		results := runChecks(opts.seed, opts.rounds)
		if err := printChecks(w, results); err != nil {
			return fmt.Errorf("write checks: %w", err)
		}
		failed := 0
		for _, r := range results {
			if r.err != nil {
				failed++
				logger.Debug("check failed", "check", r.name, "err", r.err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
		}
	}

	if opts.bench {
		report, err := runBench(opts.n, opts.iters)
		if err != nil {
			return fmt.Errorf("bench: %w", err)
		}
		logger.Debug("bench finished", "n", opts.n, "iters", opts.iters, "addErr", report.addErr)
		if err := printBench(w, opts.n, report); err != nil {
			return fmt.Errorf("write bench: %w", err)
		}
	}
	return nil
}

func printReport(w io.Writer, b buildInfo, h hostInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Backend", b.backend},
		{"Lanes", fmt.Sprint(b.lanes)},
		{"GOARCH", b.goarch},
		{"GOAMD64", orDash(b.goamd64)},
		{"GOEXPERIMENT", orDash(b.experiment)},
		{"Build tags", orDash(b.tags)},
		{"Host arch", h.arch},
		{"Host SIMD", h.level},
		{"Advice", orDash(h.advice)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func printChecks(w io.Writer, results []checkResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Check\tResult\n-----\t------\n"); err != nil {
		return err
	}
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = "FAIL: " + r.err.Error()
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.name, status); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
