package sssp

import (
	"math"
)

// log2Floor is floor(log2(n)) for n >= 1.
func log2Floor(n int) int {
	logN := 0
	for n > 1 {
		n >>= 1
		logN++
	}
	return logN
}

// ComputeK approximates k = floor(log^(1/3) n) as 2^(floor(log2 n)/3).
// Bounds the base case at k+1 settled vertices and the relaxation sweeps in
// the pivot search at k rounds.
func ComputeK(n int) int {
	if n <= 1 {
		return 1
	}
	k := 1 << (log2Floor(n) / 3)
	if k < 1 {
		return 1
	}
	return k
}

// ComputeT approximates t = floor(log^(2/3) n) as 2^(2*floor(log2 n)/3).
// Sizes the pull capacity M = 2^((l-1)t) of the block queue per level.
func ComputeT(n int) int {
	if n <= 1 {
		return 1
	}
	t := 1 << ((2 * log2Floor(n)) / 3)
	if t < 1 {
		return 1
	}
	return t
}

// TopLevel is the recursion level of the outermost call, l = ln(n)/t + 1.
func TopLevel(n, t int) int {
	if n < 1 {
		n = 1
	}
	if t < 1 {
		t = 1
	}
	return int(math.Log(float64(n))/float64(t)) + 1
}

// pow2Capped is 1 << exp with the shift clamped so it cannot overflow. The
// exponent exceeds the cap only for parameter combinations whose capacity is
// effectively unbounded anyway.
func pow2Capped(exp int) int {
	if exp < 0 {
		return 1
	}
	if exp >= 62 {
		return 1 << 62
	}
	return 1 << exp
}
