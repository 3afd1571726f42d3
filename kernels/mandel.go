package kernels

import "math/cmplx"

const mandelMaxIter = 80

// Mandel returns the escape iteration count of c under z -> z^2 + c,
// capped at 80 with escape threshold |z| > 2.
func Mandel(c complex128) int {
	z := c
	for n := 0; n < mandelMaxIter; n++ {
		if cmplx.Abs(z) > 2 {
			return n
		}
		z = z*z + c
	}
	return mandelMaxIter
}

// The grid is re in [-2.0, 0.5] and im in [-1.0, 1.0], both stepped by 0.1.
// Loop counters run over tenths so float stepping can never drop or
// duplicate a grid point: exactly 26 x 21 evaluations.

// MandelSumOld accumulates the escape counts point by point.
func MandelSumOld() int {
	sum := 0
	for re := -20; re <= 5; re++ {
		for im := -10; im <= 10; im++ {
			sum += Mandel(complex(float64(re)/10, float64(im)/10))
		}
	}
	return sum
}

// MandelSum fills a grid buffer first and reduces it afterwards.
func MandelSum() int {
	counts := make([]int, 0, 26*21)
	for re := -20; re <= 5; re++ {
		for im := -10; im <= 10; im++ {
			counts = append(counts, Mandel(complex(float64(re)/10, float64(im)/10)))
		}
	}
	sum := 0
	for _, m := range counts {
		sum += m
	}
	return sum
}
