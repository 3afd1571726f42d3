// report.go
// Persists suite results beyond the stdout stream: a CSV copy of the
// result lines, matching the printed format column for column.

package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"microbench_go/harness"
)

// WriteCSV writes one harness,name,milliseconds row per result, no header.
func WriteCSV(path, harnessName string, results []harness.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, r := range results {
		row := []string{harnessName, r.Name, strconv.FormatFloat(r.Milliseconds, 'f', -1, 64)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.Name, err)
		}
	}
	w.Flush()
	return w.Error()
}
