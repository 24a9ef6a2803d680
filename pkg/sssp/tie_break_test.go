package sssp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparePathsByDistance(t *testing.T) {
	state := NewDistState(3)
	state.SetDist(1, 5)
	state.SetDist(2, 7)

	assert.Equal(t, -1, ComparePaths(1, 2, state))
	assert.Equal(t, 1, ComparePaths(2, 1, state))
	assert.Equal(t, 0, ComparePaths(1, 1, state))
}

func TestComparePathsByHopCount(t *testing.T) {
	state := NewDistState(5)
	// both at distance 4, but 3 is two hops while 4 is one
	state.SetDist(0, 0)
	state.SetDist(1, 2)
	state.SetDist(3, 4)
	state.SetDist(4, 4)
	state.SetPred(1, 0)
	state.SetPred(3, 1)
	state.SetPred(4, 0)

	assert.Equal(t, 1, ComparePaths(3, 4, state))
	assert.Equal(t, -1, ComparePaths(4, 3, state))
}

func TestComparePathsLexicographic(t *testing.T) {
	state := NewDistState(6)
	// equal distance, equal hops, differ in the walked id sequence
	state.SetDist(0, 0)
	state.SetDist(1, 1)
	state.SetDist(2, 1)
	state.SetDist(3, 2)
	state.SetDist(4, 2)
	state.SetPred(1, 0)
	state.SetPred(2, 0)
	state.SetPred(3, 1)
	state.SetPred(4, 2)

	assert.Equal(t, -1, ComparePaths(3, 4, state))
	assert.Equal(t, 1, ComparePaths(4, 3, state))
}
