package datastructure

import (
	"math"

	"github.com/lintang-b-s/Frontierx/pkg"
)

type Index uint32

// sentinel for "no predecessor" / "vertex not present"
const INVALID_VERTEX_ID = Index(math.MaxUint32)

// equal operator
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= pkg.EPS
}

// less than operator
func Lt(a, b float64) bool {
	return a+pkg.EPS < b
}

// less than or equal operator
func Le(a, b float64) bool {
	return a <= b+pkg.EPS
}

// greater than or equal operator
func Ge(a, b float64) bool {
	return Le(b, a)
}

func Gt(a, b float64) bool {
	return Lt(b, a)
}
