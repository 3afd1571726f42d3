// suite.go
// The benchmark registry: every kernel, its expected value, and the order
// result lines appear in.

package suite

import (
	"fmt"
	"math"
	"runtime"
	"sort"

	"microbench_go/harness"
	"microbench_go/kernels"
)

const (
	fibArg         = 20
	fibExpected    = 6765
	parseIntIters  = 1000
	mandelExpected = 14791
	sortSize       = 5000
	piSumExpected  = 1.644834071848065
	piSumTolerance = 1e-12
	statTrials     = 1000
	matMulSize     = 1000
	printLines     = 100000
)

// unixLike reports whether the host has a null device the buffered-write
// benchmark can target.
func unixLike() bool {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "illumos", "aix":
		return true
	}
	return false
}

// Eligible returns the benchmark descriptors runnable on this host, in
// reporting order. Platform capability is decided here, once; the driver
// iterates the returned list and never consults the host again.
//
// Randomized kernels regenerate fresh input on every timed call, so their
// minimum-of-N mixes input variance with timing variance. Accepted.
func Eligible() []harness.Benchmark {
	list := []harness.Benchmark{
		{
			Name: "fib",
			Op:   func() { kernels.Fib(fibArg) },
			Check: func() error {
				if got := kernels.Fib(fibArg); got != fibExpected {
					return fmt.Errorf("fib(%d) = %d, want %d", fibArg, got, fibExpected)
				}
				return nil
			},
		},
		{
			Name: "parse_int",
			Op: func() {
				if err := kernels.ParseIntIters(parseIntIters); err != nil {
					panic(err)
				}
			},
			Check: func() error { return kernels.ParseIntIters(parseIntIters) },
		},
		{
			Name: "mandelOld",
			Op:   func() { kernels.MandelSumOld() },
			Check: func() error {
				if got := kernels.MandelSumOld(); got != mandelExpected {
					return fmt.Errorf("mandel grid sum = %d, want %d", got, mandelExpected)
				}
				return nil
			},
		},
		{
			Name: "mandel",
			Op:   func() { kernels.MandelSum() },
			Check: func() error {
				if got := kernels.MandelSum(); got != mandelExpected {
					return fmt.Errorf("mandel grid sum = %d, want %d", got, mandelExpected)
				}
				return nil
			},
		},
		{
			Name: "quicksortOld",
			Op: func() {
				a := kernels.RandomArray(sortSize)
				kernels.QuicksortRecursive(a, 0, len(a)-1)
			},
			Check: func() error {
				a := kernels.RandomArray(sortSize)
				kernels.QuicksortRecursive(a, 0, len(a)-1)
				if !sort.Float64sAreSorted(a) {
					return fmt.Errorf("recursive quicksort left %d elements unsorted", len(a))
				}
				return nil
			},
		},
		{
			Name: "quicksort",
			Op: func() {
				a := kernels.RandomArray(sortSize)
				kernels.QuicksortIterative(a)
			},
			Check: func() error {
				a := kernels.RandomArray(sortSize)
				kernels.QuicksortIterative(a)
				if !sort.Float64sAreSorted(a) {
					return fmt.Errorf("iterative quicksort left %d elements unsorted", len(a))
				}
				return nil
			},
		},
		{
			Name:  "pi_sumOld",
			Op:    func() { kernels.PiSumOld() },
			Check: func() error { return checkPiSum(kernels.PiSumOld()) },
		},
		{
			Name:  "pi_sum",
			Op:    func() { kernels.PiSum() },
			Check: func() error { return checkPiSum(kernels.PiSum()) },
		},
		{
			Name:  "pi_sum_vec",
			Op:    func() { kernels.PiSumVec() },
			Check: func() error { return checkPiSum(kernels.PiSumVec()) },
		},
		{
			Name: "rand_mat_stat",
			Op:   func() { kernels.RandMatStat(statTrials, nil) },
			Check: func() error {
				sp, sq := kernels.RandMatStat(statTrials, nil)
				if !(sp > 0.5 && sp < 1.0) || !(sq > 0.5 && sq < 1.0) {
					return fmt.Errorf("coefficients of variation %v, %v outside (0.5, 1.0)", sp, sq)
				}
				return nil
			},
		},
		{
			// Timing only.
			Name: "rand_mat_mul",
			Op:   func() { kernels.RandMatMul(matMulSize) },
		},
	}

	if unixLike() {
		list = append(list, harness.Benchmark{
			Name: "printfd",
			Op: func() {
				if err := kernels.PrintFD(printLines); err != nil {
					panic(err)
				}
			},
			Check: func() error { return kernels.PrintFD(printLines) },
		})
	}
	return list
}

func checkPiSum(got float64) error {
	if math.Abs(got-piSumExpected) > piSumTolerance {
		return fmt.Errorf("pi series sum = %.17g, want %.15g within %g", got, piSumExpected, piSumTolerance)
	}
	return nil
}
