package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMandelEscapeCounts(t *testing.T) {
	// Origin never escapes.
	assert.Equal(t, 80, Mandel(complex(0, 0)))
	// Already outside the threshold, escapes immediately.
	assert.Equal(t, 0, Mandel(complex(2.1, 0)))
	// Inside the main cardioid, never escapes.
	assert.Equal(t, 80, Mandel(complex(-0.1, 0.1)))
}

func TestMandelGridSum(t *testing.T) {
	// Exact regression value for the 26x21 grid at 80 iterations.
	assert.Equal(t, 14791, MandelSumOld())
	assert.Equal(t, 14791, MandelSum())
}
