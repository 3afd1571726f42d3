package suite

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microbench_go/harness"
)

func TestEligibleOrderAndNames(t *testing.T) {
	want := []string{
		"fib", "parse_int", "mandelOld", "mandel", "quicksortOld", "quicksort",
		"pi_sumOld", "pi_sum", "pi_sum_vec", "rand_mat_stat", "rand_mat_mul",
	}
	if unixLike() {
		want = append(want, "printfd")
	}

	got := Eligible()
	require.Len(t, got, len(want))
	for i, b := range got {
		assert.Equal(t, want[i], b.Name)
		assert.NotNil(t, b.Op)
	}
}

func TestOnlyMatMulSkipsItsCheck(t *testing.T) {
	for _, b := range Eligible() {
		if b.Name == "rand_mat_mul" {
			assert.Nil(t, b.Check)
		} else {
			assert.NotNil(t, b.Check, b.Name)
		}
	}
}

func TestRunChecksReportsPerKernelStatus(t *testing.T) {
	var buf bytes.Buffer
	benchmarks := []harness.Benchmark{
		{Name: "good", Op: func() {}, Check: func() error { return nil }},
		{Name: "bad", Op: func() {}, Check: func() error { return errors.New("wrong value") }},
		{Name: "untimed", Op: func() {}},
	}

	failed := runChecks(benchmarks, &buf)
	assert.Equal(t, 1, failed)

	out := buf.String()
	assert.Contains(t, out, "good")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "FAIL: wrong value")
	assert.Contains(t, out, "skipped (timing only)")
}

func TestAllChecksPass(t *testing.T) {
	if testing.Short() {
		t.Skip("runs every kernel once")
	}
	for _, b := range Eligible() {
		if b.Check == nil {
			continue
		}
		assert.NoError(t, b.Check(), b.Name)
	}
}
