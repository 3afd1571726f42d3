package kernels

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteLines writes n lines of the form "i i+1" for i = 1..n through a
// buffered writer, then flushes. The sink is closed before returning
// whether or not a write failed.
func WriteLines(sink io.WriteCloser, n int) (err error) {
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(sink)
	for i := 1; i <= n; i++ {
		if _, werr := fmt.Fprintf(w, "%d %d\n", i, i+1); werr != nil {
			return fmt.Errorf("write line %d: %w", i, werr)
		}
	}
	return w.Flush()
}

// PrintFD runs the buffered-write workload against the null device.
func PrintFD(n int) error {
	f, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", os.DevNull, err)
	}
	return WriteLines(f, n)
}
