// profile.go
// Wraps a tool invocation to report runtime and memory usage.
// Writes to the given writer so the stdout data stream stays untouched.

package profile

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Run wraps any function to measure its runtime and memory usage.
func Run(label string, out io.Writer, f func()) {
	fmt.Fprintf(out, "[Profile] Running: %s\n", label)

	// Snapshot environment info
	fmt.Fprintln(out, "[Profile] Timestamp:", time.Now().Format(time.RFC1123))
	host, err := os.Hostname()
	if err == nil {
		fmt.Fprintln(out, "[Profile] Hostname:", host)
	}
	fmt.Fprintln(out, "[Profile] Go Version:", runtime.Version())
	fmt.Fprintf(out, "[Profile] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// Prepare for measurement
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	numCPU := runtime.NumCPU()
	startGoroutines := runtime.NumGoroutine()

	// Run wrapped function
	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	// Report resource usage
	fmt.Fprintf(out, "[Profile] Time Elapsed: %v\n", elapsed)
	fmt.Fprintf(out, "[Profile] Memory Used: %.2f MB\n", float64(memEnd.Alloc-memStart.Alloc)/1024.0/1024.0)
	fmt.Fprintf(out, "[Profile] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0)
	fmt.Fprintf(out, "[Profile] Peak Heap: %.2f MB\n", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	fmt.Fprintf(out, "[Profile] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Fprintf(out, "[Profile] CPU Cores: %d\n", numCPU)
	fmt.Fprintf(out, "[Profile] Goroutines Started: %d → %d\n", startGoroutines, endGoroutines)
	fmt.Fprintln(out, "[Profile] ----------------------------------------")
}
