package preprocessor

import (
	"math/rand"
	"testing"

	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/sssp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAnalyzeFindsHighDegreeVertices(t *testing.T) {
	g := da.NewGraph(5)
	for i := 1; i < 5; i++ {
		require.NoError(t, g.AddEdge(0, da.Index(i), 1, 0))
	}

	dt := NewDegreeTransformer(zap.NewNop())
	res := dt.Analyze(g)

	assert.True(t, res.NeedsTransformation())
	assert.Equal(t, []da.Index{0}, res.GetHighDegreeVertices())
	assert.Equal(t, 4, res.GetMaxOutDegree())
	assert.Equal(t, 1, res.GetMaxInDegree())
}

func TestTransformKeepsLowDegreeGraph(t *testing.T) {
	g := da.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 1, 0))

	dt := NewDegreeTransformer(zap.NewNop())
	got, tm, err := dt.Transform(g)
	require.NoError(t, err)

	assert.Same(t, g, got)
	assert.False(t, tm.WasTransformed())
	assert.Equal(t, da.Index(1), tm.Representative(1))
}

func TestTransformCapsDegrees(t *testing.T) {
	// star with fan-in and fan-out through the hub
	g := da.NewGraph(9)
	for i := 1; i <= 4; i++ {
		require.NoError(t, g.AddEdge(da.Index(i), 0, 1, 0))
	}
	for i := 5; i <= 8; i++ {
		require.NoError(t, g.AddEdge(0, da.Index(i), 1, 0))
	}

	dt := NewDegreeTransformer(zap.NewNop())
	transformed, tm, err := dt.Transform(g)
	require.NoError(t, err)
	require.True(t, tm.WasTransformed())

	maxIn, maxOut := transformed.MaxDegrees()
	assert.LessOrEqual(t, maxIn, MAX_DEGREE)
	assert.LessOrEqual(t, maxOut, MAX_DEGREE)

	ca := AnalyzeComplexity(g, transformed)
	assert.True(t, ca.MaintainsLinearBound)
	assert.Greater(t, ca.VertexExpansionRatio, 1.0)
}

func TestTransformPreservesShortestPaths(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 10; trial++ {
		n := 20 + rng.Intn(30)
		g := da.NewGraph(n)
		for i := 0; i < 6*n; i++ {
			from := da.Index(rng.Intn(n))
			to := da.Index(rng.Intn(n))
			if from == to {
				continue
			}
			require.NoError(t, g.AddEdge(from, to, rng.Float64()*10, 0))
		}

		dt := NewDegreeTransformer(zap.NewNop())
		transformed, tm, err := dt.Transform(g)
		require.NoError(t, err)

		maxIn, maxOut := transformed.MaxDegrees()
		require.LessOrEqual(t, maxIn, MAX_DEGREE)
		require.LessOrEqual(t, maxOut, MAX_DEGREE)

		source := da.Index(rng.Intn(n))

		wantDist, _ := sssp.NewSolver(g, zap.NewNop()).Solve(source)
		gotRaw, _ := sssp.NewSolver(transformed, zap.NewNop()).Solve(tm.Representative(source))
		gotDist := tm.MapDistances(gotRaw)

		require.Equal(t, len(wantDist), len(gotDist), "reached sets differ")
		for v, wd := range wantDist {
			assert.InDelta(t, wd, gotDist[v], 1e-9, "distance mismatch at original vertex %d", v)
		}
	}
}
