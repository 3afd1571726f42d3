package kernels

import "math/rand"

// QuicksortRecursive sorts a[lo..hi] in place. Middle-element pivot,
// symmetric scan, recursion on the left partition with tail iteration on
// the right.
func QuicksortRecursive(a []float64, lo, hi int) {
	i, j := lo, hi
	for i < hi {
		pivot := a[(lo+hi)/2]
		for i <= j {
			for a[i] < pivot {
				i++
			}
			for a[j] > pivot {
				j--
			}
			if i <= j {
				a[i], a[j] = a[j], a[i]
				i++
				j--
			}
		}
		if lo < j {
			QuicksortRecursive(a, lo, j)
		}
		lo = i
		j = hi
	}
}

// QuicksortIterative sorts a in place with the same partition scheme but an
// explicit range stack instead of recursion.
func QuicksortIterative(a []float64) {
	if len(a) < 2 {
		return
	}
	type span struct{ lo, hi int }
	stack := []span{{0, len(a) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lo, hi := s.lo, s.hi
		for lo < hi {
			i, j := lo, hi
			pivot := a[(lo+hi)/2]
			for i <= j {
				for a[i] < pivot {
					i++
				}
				for a[j] > pivot {
					j--
				}
				if i <= j {
					a[i], a[j] = a[j], a[i]
					i++
					j--
				}
			}
			if lo < j {
				stack = append(stack, span{lo, j})
			}
			lo = i
		}
	}
}

// RandomArray draws n uniform [0,1) values from the process-global source.
func RandomArray(n int) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = rand.Float64()
	}
	return a
}
