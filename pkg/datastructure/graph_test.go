package datastructure

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/Frontierx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphRejectsNegativeWeight(t *testing.T) {
	g := NewGraph(2)
	err := g.AddEdge(0, 1, -1.0, 0)
	require.Error(t, err)

	var wrapped *util.Error
	require.True(t, errors.As(err, &wrapped))
	assert.ErrorIs(t, wrapped.Code(), util.ErrBadParamInput)
	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestGraphRejectsInvalidVertex(t *testing.T) {
	g := NewGraph(2)
	assert.Error(t, g.AddEdge(0, 5, 1.0, 0))
	assert.Error(t, g.AddEdge(9, 1, 1.0, 0))
	assert.NoError(t, g.AddEdge(0, 1, 1.0, 0))
}

func TestGraphDegreesAndIteration(t *testing.T) {
	g := NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1, 0))
	require.NoError(t, g.AddEdge(0, 2, 2, 0))
	require.NoError(t, g.AddEdge(1, 2, 3, 0))
	require.NoError(t, g.AddEdge(2, 3, 4, 0))

	assert.Equal(t, 2, g.GetOutDegree(0))
	assert.Equal(t, 0, g.GetInDegree(0))
	assert.Equal(t, 2, g.GetInDegree(2))
	assert.Equal(t, 4, g.NumberOfEdges())

	heads := make([]Index, 0, 2)
	g.ForOutEdgesOf(0, func(e *OutEdge) {
		heads = append(heads, e.GetHead())
	})
	assert.Equal(t, []Index{1, 2}, heads)

	maxIn, maxOut := g.MaxDegrees()
	assert.Equal(t, 2, maxIn)
	assert.Equal(t, 2, maxOut)
}

func TestGraphWriteReadRoundTrip(t *testing.T) {
	g := NewGraphWithCoords(3,
		[]float64{-7.75, -7.76, -7.77},
		[]float64{110.37, 110.38, 110.39})
	require.NoError(t, g.AddEdge(0, 1, 1.5, 120))
	require.NoError(t, g.AddEdge(1, 2, 2.25, 250))
	require.NoError(t, g.AddEdge(2, 0, 0.5, 60))

	file := filepath.Join(t.TempDir(), "graph.frontierx")
	require.NoError(t, g.WriteGraph(file))

	got, err := ReadGraph(file)
	require.NoError(t, err)

	assert.Equal(t, g.NumberOfVertices(), got.NumberOfVertices())
	assert.Equal(t, g.NumberOfEdges(), got.NumberOfEdges())
	require.True(t, got.HasCoordinates())
	assert.Equal(t, -7.76, got.GetVertexLat(1))
	assert.Equal(t, 110.38, got.GetVertexLon(1))

	edges := got.GetOutEdges(1)
	require.Len(t, edges, 1)
	assert.Equal(t, Index(2), edges[0].GetHead())
	assert.Equal(t, 2.25, edges[0].GetWeight())
	assert.Equal(t, 250.0, edges[0].GetDist())
}
