// tools.go
// CLI entry points for the suite: run, check and list.

package suite

import (
	"flag"
	"fmt"
	"io"
	"os"

	"microbench_go/harness"
	"microbench_go/report"
)

// Run executes the full suite: validate each kernel once, time it, print
// one result line per benchmark. Optional flags persist the results as CSV
// or as an SVG chart.
func Run(args []string) {

	fs := flag.NewFlagSet("run", flag.ExitOnError)

	trials := fs.Int("trials", 20, "Timed repetitions per benchmark (minimum kept)")
	quiet := fs.Bool("quiet", false, "Suppress result lines on stdout")
	csvPath := fs.String("csv", "", "Also write results to this CSV file")
	plotPath := fs.String("plot", "", "Also write an SVG timings chart to this file")
	label := fs.String("harness", "go", "Implementation label in the first output column")

	fs.Parse(args)

	opts := harness.DefaultOptions()
	opts.Trials = *trials
	opts.Verbose = !*quiet
	opts.Harness = *label

	results, err := harness.RunSuite(Eligible(), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Benchmark run aborted:", err)
		os.Exit(1)
	}

	if *csvPath != "" {
		if err := report.WriteCSV(*csvPath, opts.Harness, results); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing CSV:", err)
			os.Exit(1)
		}
	}
	if *plotPath != "" {
		if err := report.SavePlot(*plotPath, results); err != nil {
			fmt.Fprintln(os.Stderr, "Error writing plot:", err)
			os.Exit(1)
		}
	}
}

// Check runs every eligible kernel's correctness check once, without any
// timing, and reports per-kernel status. The summary goes to stderr so
// stdout stays a pure data channel. Exits non-zero after printing the full
// summary if any check failed.
func Check(args []string) {

	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Parse(args)

	if failed := runChecks(Eligible(), os.Stderr); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d check(s) failed\n", failed)
		os.Exit(1)
	}
}

func runChecks(benchmarks []harness.Benchmark, out io.Writer) int {
	failed := 0
	for _, b := range benchmarks {
		if b.Check == nil {
			fmt.Fprintf(out, "%-16s skipped (timing only)\n", b.Name)
			continue
		}
		if err := b.Check(); err != nil {
			fmt.Fprintf(out, "%-16s FAIL: %v\n", b.Name, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%-16s ok\n", b.Name)
	}
	return failed
}

// List prints the names of the benchmarks eligible on this host, one per
// line, in reporting order.
func List(args []string) {
	for _, b := range Eligible() {
		fmt.Println(b.Name)
	}
}
