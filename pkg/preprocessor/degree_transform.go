package preprocessor

import (
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/util"
	"go.uber.org/zap"
)

// MAX_DEGREE is the in/out degree cap the transformation establishes.
const MAX_DEGREE = 2

// minimum cycle length when a vertex is expanded
const minCycleSize = 3

// DegreeTransformer rewrites a graph so every vertex has in- and out-degree
// at most MAX_DEGREE while preserving shortest path lengths. High-degree
// vertices become zero-weight cycles with the original edges distributed
// around the cycle.
type DegreeTransformer struct {
	log *zap.Logger
}

func NewDegreeTransformer(log *zap.Logger) *DegreeTransformer {
	return &DegreeTransformer{log: log}
}

type AnalysisResult struct {
	highDegreeVertices []da.Index
	maxInDegree        int
	maxOutDegree       int
}

func (ar AnalysisResult) GetHighDegreeVertices() []da.Index {
	return ar.highDegreeVertices
}

func (ar AnalysisResult) GetMaxInDegree() int {
	return ar.maxInDegree
}

func (ar AnalysisResult) GetMaxOutDegree() int {
	return ar.maxOutDegree
}

func (ar AnalysisResult) NeedsTransformation() bool {
	return len(ar.highDegreeVertices) > 0
}

// Analyze scans the degree distribution and lists the vertices exceeding
// MAX_DEGREE.
func (dt *DegreeTransformer) Analyze(g *da.Graph) AnalysisResult {
	res := AnalysisResult{}
	for v := da.Index(0); v < da.Index(g.NumberOfVertices()); v++ {
		inDeg := g.GetInDegree(v)
		outDeg := g.GetOutDegree(v)

		res.maxInDegree = util.Max(res.maxInDegree, inDeg)
		res.maxOutDegree = util.Max(res.maxOutDegree, outDeg)

		if inDeg > MAX_DEGREE || outDeg > MAX_DEGREE {
			res.highDegreeVertices = append(res.highDegreeVertices, v)
		}
	}
	return res
}

// TransformMap records how original vertices map into the transformed
// graph. A kept vertex maps to a one-element cycle of itself.
type TransformMap struct {
	vertexToCycle [][]da.Index
	transformed   bool
}

func (tm *TransformMap) WasTransformed() bool {
	return tm.transformed
}

// Representative is the transformed-graph vertex standing in for the
// original vertex v. All vertices of a zero-weight cycle share one distance,
// so any cycle member is a valid representative.
func (tm *TransformMap) Representative(v da.Index) da.Index {
	return tm.vertexToCycle[v][0]
}

func (tm *TransformMap) GetCycle(v da.Index) []da.Index {
	return tm.vertexToCycle[v]
}

// MapDistances projects a distance map of the transformed graph back onto
// original vertex ids, taking the minimum over each cycle.
func (tm *TransformMap) MapDistances(distances map[da.Index]float64) map[da.Index]float64 {
	out := make(map[da.Index]float64, len(tm.vertexToCycle))
	for v, cycle := range tm.vertexToCycle {
		best, reached := 0.0, false
		for _, cv := range cycle {
			if d, ok := distances[cv]; ok {
				if !reached || d < best {
					best = d
					reached = true
				}
			}
		}
		if reached {
			out[da.Index(v)] = best
		}
	}
	return out
}

// Transform returns a constant-degree version of g together with the vertex
// mapping. A graph already within the cap is returned unchanged.
func (dt *DegreeTransformer) Transform(g *da.Graph) (*da.Graph, *TransformMap, error) {
	analysis := dt.Analyze(g)

	n := g.NumberOfVertices()
	tm := &TransformMap{vertexToCycle: make([][]da.Index, n)}

	if !analysis.NeedsTransformation() {
		for v := 0; v < n; v++ {
			tm.vertexToCycle[v] = []da.Index{da.Index(v)}
		}
		return g, tm, nil
	}
	tm.transformed = true

	// first pass sizes the transformed graph: kept vertices retain their id,
	// every expanded vertex takes a contiguous run of fresh ids
	nextId := da.Index(n)
	for v := da.Index(0); v < da.Index(n); v++ {
		inDeg := g.GetInDegree(v)
		outDeg := g.GetOutDegree(v)

		if inDeg <= MAX_DEGREE && outDeg <= MAX_DEGREE {
			tm.vertexToCycle[v] = []da.Index{v}
			continue
		}

		size := util.Max(util.Max(inDeg, outDeg), minCycleSize)
		cycle := make([]da.Index, size)
		for i := 0; i < size; i++ {
			cycle[i] = nextId
			nextId++
		}
		tm.vertexToCycle[v] = cycle
	}

	out := da.NewGraph(int(nextId))

	// zero-weight cycle edges
	for v := 0; v < n; v++ {
		cycle := tm.vertexToCycle[v]
		if len(cycle) == 1 {
			continue
		}
		for i := range cycle {
			next := (i + 1) % len(cycle)
			if err := out.AddEdge(cycle[i], cycle[next], 0, 0); err != nil {
				return nil, nil, err
			}
		}
	}

	// distribute the original edges around the cycles by modular indexing
	outCount := make([]int, n)
	inCount := make([]int, n)
	for u := da.Index(0); u < da.Index(n); u++ {
		var addErr error
		g.ForOutEdgesOf(u, func(e *da.OutEdge) {
			if addErr != nil {
				return
			}
			v := e.GetHead()

			srcCycle := tm.vertexToCycle[u]
			dstCycle := tm.vertexToCycle[v]

			src := srcCycle[0]
			if len(srcCycle) > 1 {
				src = srcCycle[outCount[u]%len(srcCycle)]
				outCount[u]++
			}
			dst := dstCycle[0]
			if len(dstCycle) > 1 {
				dst = dstCycle[inCount[v]%len(dstCycle)]
				inCount[v]++
			}

			addErr = out.AddEdge(src, dst, e.GetWeight(), e.GetDist())
		})
		if addErr != nil {
			return nil, nil, addErr
		}
	}

	if dt.log != nil {
		dt.log.Info("constant-degree transformation",
			zap.Int("original_vertices", n),
			zap.Int("original_edges", g.NumberOfEdges()),
			zap.Int("transformed_vertices", out.NumberOfVertices()),
			zap.Int("transformed_edges", out.NumberOfEdges()),
			zap.Int("expanded_vertices", len(analysis.GetHighDegreeVertices())),
		)
	}

	return out, tm, nil
}

// ComplexityAnalysis reports the expansion the transformation introduced.
// Vertices and edges both stay within 3m of the original edge count.
type ComplexityAnalysis struct {
	OriginalVertices     int
	OriginalEdges        int
	TransformedVertices  int
	TransformedEdges     int
	VertexExpansionRatio float64
	EdgeExpansionRatio   float64
	MaintainsLinearBound bool
}

func AnalyzeComplexity(original, transformed *da.Graph) ComplexityAnalysis {
	ca := ComplexityAnalysis{
		OriginalVertices:    original.NumberOfVertices(),
		OriginalEdges:       original.NumberOfEdges(),
		TransformedVertices: transformed.NumberOfVertices(),
		TransformedEdges:    transformed.NumberOfEdges(),
	}
	if ca.OriginalVertices > 0 {
		ca.VertexExpansionRatio = float64(ca.TransformedVertices) / float64(ca.OriginalVertices)
	}
	if ca.OriginalEdges > 0 {
		ca.EdgeExpansionRatio = float64(ca.TransformedEdges) / float64(ca.OriginalEdges)

		bound := 3 * ca.OriginalEdges
		ca.MaintainsLinearBound = ca.TransformedVertices <= bound+ca.OriginalVertices &&
			ca.TransformedEdges <= bound+ca.OriginalEdges
	}
	return ca
}
