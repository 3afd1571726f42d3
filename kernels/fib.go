package kernels

// Fib computes the nth Fibonacci number by naive double recursion.
// The workload is function call overhead, so no memoization on purpose.
func Fib(n int) int {
	if n < 2 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}
