package kernels

import "gonum.org/v1/gonum/floats"

const (
	piSumTerms = 10000
	piSumReps  = 500
)

// All three variants recompute the same partial sum of 1/k^2 for
// k = 1..10000, 500 times over, and return the last repetition's value.
// The scalar loops sum in ascending k and agree bit for bit; floats.Sum
// may associate the terms differently, so the vectorized variant only
// agrees within the series tolerance.

// PiSumOld keeps an integer loop counter and converts per term.
func PiSumOld() float64 {
	var sum float64
	for r := 0; r < piSumReps; r++ {
		sum = 0
		for k := 1; k <= piSumTerms; k++ {
			sum += 1.0 / (float64(k) * float64(k))
		}
	}
	return sum
}

// PiSum counts in floating point directly.
func PiSum() float64 {
	var sum float64
	for r := 0; r < piSumReps; r++ {
		sum = 0
		for k := 1.0; k <= piSumTerms; k++ {
			sum += 1.0 / (k * k)
		}
	}
	return sum
}

// PiSumVec materializes the term slice and reduces it with floats.Sum.
func PiSumVec() float64 {
	terms := make([]float64, piSumTerms)
	var sum float64
	for r := 0; r < piSumReps; r++ {
		for k := 1; k <= piSumTerms; k++ {
			terms[k-1] = 1.0 / (float64(k) * float64(k))
		}
		sum = floats.Sum(terms)
	}
	return sum
}
