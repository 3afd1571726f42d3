// harness.go
// Timing and reporting glue shared by every registered benchmark.
// Times a wrapped function repeatedly and keeps the fastest run.

package harness

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"
)

// Benchmark ties a reporting name to a timed operation and an optional
// one-shot correctness check. A nil Check means timing only.
type Benchmark struct {
	Name  string
	Op    func()
	Check func() error
}

// Result is one reported measurement: the minimum wall-clock time
// observed across all trials, in milliseconds.
type Result struct {
	Name         string
	Milliseconds float64
}

// Options configures a suite run. There is deliberately no package-level
// state; callers pass everything in.
type Options struct {
	// Harness is the implementation label in the first output column.
	Harness string
	// Trials is how many times each operation runs; the minimum is kept.
	Trials int
	// Verbose controls whether result lines are written at all.
	Verbose bool
	// Writer receives the result lines. Nil falls back to stdout.
	Writer io.Writer
}

// DefaultOptions matches the plain "run everything and print" invocation.
func DefaultOptions() Options {
	return Options{Harness: "go", Trials: 20, Verbose: true, Writer: os.Stdout}
}

// MinTime runs op exactly trials times, one after another on the calling
// goroutine, and returns the fastest run in milliseconds. The minimum damps
// scheduler and cache noise better than a mean would. A panic inside op is
// not recovered.
func MinTime(op func(), trials int) float64 {
	best := time.Duration(math.MaxInt64)
	for i := 0; i < trials; i++ {
		start := time.Now()
		op()
		if d := time.Since(start); d < best {
			best = d
		}
	}
	return float64(best.Nanoseconds()) / 1e6
}

// RunSuite validates and times each benchmark in order. Every correctness
// check runs once before its timing loop; the first failed check stops the
// suite and is returned, leaving the lines already written untouched.
func RunSuite(benchmarks []Benchmark, opts Options) ([]Result, error) {
	if opts.Trials < 1 {
		return nil, fmt.Errorf("trials must be at least 1, got %d", opts.Trials)
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	results := make([]Result, 0, len(benchmarks))
	for _, b := range benchmarks {
		if b.Check != nil {
			if err := b.Check(); err != nil {
				return results, fmt.Errorf("correctness check failed for %s: %w", b.Name, err)
			}
		}
		ms := MinTime(b.Op, opts.Trials)
		results = append(results, Result{Name: b.Name, Milliseconds: ms})
		if opts.Verbose {
			// Fixed-point so sub-0.1µs minima never print as scientific
			// notation; matches the CSV surface.
			fmt.Fprintf(opts.Writer, "%s,%s,%s\n", opts.Harness, b.Name, strconv.FormatFloat(ms, 'f', -1, 64))
		}
	}
	return results, nil
}
