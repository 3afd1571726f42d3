package kernels

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTripBoundaries(t *testing.T) {
	for _, n := range []uint32{0, 1, 15, 16, 255, 4096, math.MaxUint32 - 1, math.MaxUint32} {
		got, err := HexRoundTrip(n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestHexRoundTripRandomSample(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100000; i++ {
		n := rng.Uint32()
		got, err := HexRoundTrip(n)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestParseIntIters(t *testing.T) {
	assert.NoError(t, ParseIntIters(1000))
}
