package datastructure

import (
	"github.com/lintang-b-s/Frontierx/pkg/util"
)

// OutEdge is a directed edge leaving its tail vertex. weight is the routing
// cost, dist the geometric length in meter (zero for synthetic graphs).
type OutEdge struct {
	weight float64
	dist   float64
	edgeId Index
	head   Index
}

func NewOutEdge(edgeId, head Index, weight, dist float64) OutEdge {
	return OutEdge{
		edgeId: edgeId,
		head:   head,
		weight: weight,
		dist:   dist,
	}
}

func (e *OutEdge) GetHead() Index {
	return e.head
}

func (e *OutEdge) GetWeight() float64 {
	return e.weight
}

func (e *OutEdge) GetDist() float64 {
	return e.dist
}

func (e *OutEdge) GetEdgeId() Index {
	return e.edgeId
}

// Graph is a directed multigraph with non-negative edge weights. Vertex ids
// are dense in [0, n). Adjacency is stored per tail vertex in insertion
// order, so edge iteration is deterministic.
type Graph struct {
	outEdges [][]OutEdge
	inDegree []int32

	lats []float64
	lons []float64

	numEdges int
}

func NewGraph(numVertices int) *Graph {
	return &Graph{
		outEdges: make([][]OutEdge, numVertices),
		inDegree: make([]int32, numVertices),
	}
}

func NewGraphWithCoords(numVertices int, lats, lons []float64) *Graph {
	g := NewGraph(numVertices)
	g.lats = lats
	g.lons = lons
	return g
}

// AddEdge appends a directed edge from -> to. Negative weights and vertex
// ids outside [0, n) fail the build.
func (g *Graph) AddEdge(from, to Index, weight, dist float64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"edge endpoints must be valid vertex ids: (%d, %d)", from, to)
	}
	if weight < 0 {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"edge weight must be non-negative: %f", weight)
	}

	eid := Index(g.numEdges)
	g.outEdges[from] = append(g.outEdges[from], NewOutEdge(eid, to, weight, dist))
	g.inDegree[to]++
	g.numEdges++
	return nil
}

func (g *Graph) HasVertex(v Index) bool {
	return int(v) < len(g.outEdges)
}

func (g *Graph) NumberOfVertices() int {
	return len(g.outEdges)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

func (g *Graph) GetOutDegree(v Index) int {
	if !g.HasVertex(v) {
		return 0
	}
	return len(g.outEdges[v])
}

func (g *Graph) GetInDegree(v Index) int {
	if !g.HasVertex(v) {
		return 0
	}
	return int(g.inDegree[v])
}

// GetOutEdges returns the adjacency slice of v. Callers must not mutate it.
func (g *Graph) GetOutEdges(v Index) []OutEdge {
	if !g.HasVertex(v) {
		return nil
	}
	return g.outEdges[v]
}

// ForOutEdgesOf iterates the outgoing edges of u in insertion order.
func (g *Graph) ForOutEdgesOf(u Index, fn func(e *OutEdge)) {
	if !g.HasVertex(u) {
		return
	}
	edges := g.outEdges[u]
	for i := range edges {
		fn(&edges[i])
	}
}

func (g *Graph) HasCoordinates() bool {
	return len(g.lats) == g.NumberOfVertices() && len(g.lats) > 0
}

func (g *Graph) GetVertexLat(v Index) float64 {
	return g.lats[v]
}

func (g *Graph) GetVertexLon(v Index) float64 {
	return g.lons[v]
}

func (g *Graph) SetCoords(lats, lons []float64) {
	g.lats = lats
	g.lons = lons
}

// MaxDegrees reports the maximum in- and out-degree over all vertices.
func (g *Graph) MaxDegrees() (int, int) {
	maxIn, maxOut := 0, 0
	for v := 0; v < g.NumberOfVertices(); v++ {
		maxIn = util.Max(maxIn, int(g.inDegree[v]))
		maxOut = util.Max(maxOut, len(g.outEdges[v]))
	}
	return maxIn, maxOut
}
