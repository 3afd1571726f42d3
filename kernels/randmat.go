package kernels

import (
	"math/rand"
	randv2 "math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const randMatBlock = 5

// RandMatStat runs trials of the two block constructions over four random
// standard-normal 5x5 blocks a, b, c, d:
//
//	P = [a b c d]      5 x 20 row join
//	Q = [a b; c d]     10 x 10 block square
//
// and records trace((M'M)^4) per trial for each. Returned are the
// coefficients of variation (stddev/mean) of the two series. A nil src uses
// the process-global generator.
func RandMatStat(trials int, src randv2.Source) (float64, float64) {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	n := randMatBlock

	v := make([]float64, trials)
	w := make([]float64, trials)
	p := mat.NewDense(n, 4*n, nil)
	q := mat.NewDense(2*n, 2*n, nil)

	for t := 0; t < trials; t++ {
		for g := 0; g < 4; g++ {
			// Block g lands at column offset g*n in P and at quadrant
			// (g/2, g%2) in Q.
			rowOff := (g / 2) * n
			colOff := (g % 2) * n
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					x := norm.Rand()
					p.Set(i, g*n+j, x)
					q.Set(rowOff+i, colOff+j, x)
				}
			}
		}
		v[t] = traceGramFourth(p)
		w[t] = traceGramFourth(q)
	}

	sp := stat.StdDev(v, nil) / stat.Mean(v, nil)
	sq := stat.StdDev(w, nil) / stat.Mean(w, nil)
	return sp, sq
}

// traceGramFourth computes trace((M'M)^4) by squaring the Gram matrix twice.
func traceGramFourth(m mat.Matrix) float64 {
	var gram, sq, fourth mat.Dense
	gram.Mul(m.T(), m)
	sq.Mul(&gram, &gram)
	fourth.Mul(&sq, &sq)
	return mat.Trace(&fourth)
}

// RandMatMul multiplies two uniform-random n x n dense matrices.
func RandMatMul(n int) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	b := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rand.Float64())
			b.Set(i, j, rand.Float64())
		}
	}
	var c mat.Dense
	c.Mul(a, b)
	return &c
}
