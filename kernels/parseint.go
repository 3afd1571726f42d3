package kernels

import (
	"fmt"
	"math/rand"
	"strconv"
)

// HexRoundTrip renders n as hexadecimal text and parses it back.
func HexRoundTrip(n uint32) (uint32, error) {
	s := strconv.FormatUint(uint64(n), 16)
	m, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(m), nil
}

// ParseIntIters does iters random round trips, failing on the first value
// that does not survive the trip.
func ParseIntIters(iters int) error {
	for i := 0; i < iters; i++ {
		n := rand.Uint32()
		m, err := HexRoundTrip(n)
		if err != nil {
			return fmt.Errorf("hex round trip of %d: %w", n, err)
		}
		if m != n {
			return fmt.Errorf("hex round trip: got %d, want %d", m, n)
		}
	}
	return nil
}
