package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func coordGraph(t *testing.T) *datastructure.Graph {
	t.Helper()
	// a few vertices around yogyakarta, roughly 1km apart
	lats := []float64{-7.7800, -7.7890, -7.7980, -7.8070}
	lons := []float64{110.3700, 110.3700, 110.3700, 110.3700}
	g := datastructure.NewGraphWithCoords(4, lats, lons)
	require.NoError(t, g.AddEdge(0, 1, 1, 1000))
	require.NoError(t, g.AddEdge(1, 2, 1, 1000))
	require.NoError(t, g.AddEdge(2, 3, 1, 1000))
	return g
}

func TestRtreeRequiresCoordinates(t *testing.T) {
	g := datastructure.NewGraph(3)
	rt := NewRtree()
	assert.Error(t, rt.Build(g, 0.05, zap.NewNop()))
}

func TestRtreeSnapToNearestVertex(t *testing.T) {
	g := coordGraph(t)
	rt := NewRtree()
	require.NoError(t, rt.Build(g, 0.05, zap.NewNop()))

	// slightly north of vertex 1
	v, ok := rt.SnapToNearestVertex(-7.7885, 110.3702, 1.0)
	require.True(t, ok)
	assert.Equal(t, datastructure.Index(1), v)

	// far away from every vertex
	_, ok = rt.SnapToNearestVertex(0.0, 0.0, 1.0)
	assert.False(t, ok)
}

func TestRtreeSearchWithinRadius(t *testing.T) {
	g := coordGraph(t)
	rt := NewRtree()
	require.NoError(t, rt.Build(g, 0.05, zap.NewNop()))

	hits := rt.SearchWithinRadius(-7.789, 110.37, 1.2)
	assert.GreaterOrEqual(t, len(hits), 2)
}
