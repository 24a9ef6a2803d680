package sssp

import (
	"testing"

	"github.com/lintang-b-s/Frontierx/pkg"
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPivotsEarlyExitCollapsesToFrontier(t *testing.T) {
	// star: the witnessed set outgrows k*|S| in the first sweep
	g := da.NewGraph(10)
	for i := 1; i <= 6; i++ {
		require.NoError(t, g.AddEdge(0, da.Index(i), 1, 0))
	}
	s := newTestSolver(t, g, 0)
	require.Equal(t, 2, s.GetK())

	pivots, witnessed := s.findPivots(pkg.INF_WEIGHT, []da.Index{0})

	assert.Equal(t, []da.Index{0}, pivots)
	assert.Greater(t, len(witnessed), s.GetK())

	// sweep improvements must have reached the shared state
	assert.Equal(t, 1.0, s.state.GetDist(3))
}

func TestFindPivotsKeepsHeavySubtreeRoot(t *testing.T) {
	// single edge: the frontier root witnesses exactly k vertices
	g := da.NewGraph(10)
	require.NoError(t, g.AddEdge(0, 1, 1, 0))
	s := newTestSolver(t, g, 0)
	require.Equal(t, 2, s.GetK())

	pivots, witnessed := s.findPivots(pkg.INF_WEIGHT, []da.Index{0})

	assert.Equal(t, []da.Index{0}, pivots)
	assert.ElementsMatch(t, []da.Index{0, 1}, witnessed)
	assert.Equal(t, 1.0, s.state.GetDist(1))
}

func TestFindPivotsFallsBackToFrontierWithoutHeavyTrees(t *testing.T) {
	// isolated frontier vertex: no subtree reaches k vertices
	g := da.NewGraph(16)
	require.NoError(t, g.AddEdge(4, 5, 1, 0))
	s := newTestSolver(t, g, 0)
	require.Equal(t, 2, s.GetK())

	pivots, witnessed := s.findPivots(pkg.INF_WEIGHT, []da.Index{0})

	assert.Equal(t, []da.Index{0}, pivots)
	assert.Equal(t, []da.Index{0}, witnessed)
}

func TestFindPivotsHonorsBound(t *testing.T) {
	g := chainGraph(t, 8)
	s := newTestSolver(t, g, 0)

	_, witnessed := s.findPivots(1.5, []da.Index{0})

	// only vertex 1 fits under the bound
	assert.ElementsMatch(t, []da.Index{0, 1}, witnessed)
	assert.Equal(t, pkg.INF_WEIGHT, s.state.GetDist(2))
}

func TestFindPivotsWitnessedSupersetOfFrontier(t *testing.T) {
	g := chainGraph(t, 16)
	s := newTestSolver(t, g, 0)
	s.state.SetDist(1, 1)

	_, witnessed := s.findPivots(pkg.INF_WEIGHT, []da.Index{0, 1})

	for _, f := range []da.Index{0, 1} {
		assert.Contains(t, witnessed, f)
	}
}
