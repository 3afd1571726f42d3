package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const basel10k = 1.644834071848065

func TestPiSumVariantsHitTolerance(t *testing.T) {
	assert.InDelta(t, basel10k, PiSumOld(), 1e-12)
	assert.InDelta(t, basel10k, PiSum(), 1e-12)
	assert.InDelta(t, basel10k, PiSumVec(), 1e-12)
}

func TestPiSumScalarVariantsAgreeExactly(t *testing.T) {
	// Both scalar loops accumulate in ascending k, so they agree bit for bit.
	assert.Equal(t, PiSumOld(), PiSum())
}

func TestPiSumVecMatchesScalarWithinTolerance(t *testing.T) {
	// The reduction may associate terms differently from the scalar loops,
	// so only the series tolerance is guaranteed.
	assert.InDelta(t, PiSumOld(), PiSumVec(), 1e-12)
}
