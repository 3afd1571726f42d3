package kernels

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	bytes.Buffer
	closed bool
}

func (r *recordingSink) Close() error {
	r.closed = true
	return nil
}

// failingSink accepts a limited number of underlying writes, then errors.
type failingSink struct {
	writes int
	limit  int
	closed bool
}

func (f *failingSink) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > f.limit {
		return 0, errors.New("sink full")
	}
	return len(p), nil
}

func (f *failingSink) Close() error {
	f.closed = true
	return nil
}

func TestWriteLinesContent(t *testing.T) {
	sink := &recordingSink{}
	n := 1000
	require.NoError(t, WriteLines(sink, n))
	require.True(t, sink.closed)

	lines := strings.Split(strings.TrimSuffix(sink.String(), "\n"), "\n")
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("%d %d", i+1, i+2), line)
	}
}

func TestWriteLinesClosesSinkOnError(t *testing.T) {
	// Enough lines to overflow the buffer several times over; the second
	// underlying write fails mid-run.
	sink := &failingSink{limit: 1}
	err := WriteLines(sink, 100000)
	require.Error(t, err)
	assert.True(t, sink.closed, "sink must be closed even when a write fails")
}

func TestPrintFD(t *testing.T) {
	assert.NoError(t, PrintFD(100))
}
