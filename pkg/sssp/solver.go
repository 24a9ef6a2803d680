package sssp

import (
	"github.com/lintang-b-s/Frontierx/pkg"
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/metrics"
	"go.uber.org/zap"
)

// Solver runs the bounded multi-source shortest path recursion over one
// graph. A Solver is single use per query: Solve resets the shared distance
// state and is strictly sequential.
type Solver struct {
	graph *da.Graph
	state *DistState

	k int
	t int

	counters *metrics.PhaseCounters
	log      *zap.Logger
}

func NewSolver(graph *da.Graph, log *zap.Logger) *Solver {
	n := graph.NumberOfVertices()
	return &Solver{
		graph: graph,
		k:     ComputeK(n),
		t:     ComputeT(n),
		log:   log,
	}
}

// NewSolverWithCounters attaches phase counters, used by profiling runs and
// the complexity tests.
func NewSolverWithCounters(graph *da.Graph, log *zap.Logger, counters *metrics.PhaseCounters) *Solver {
	s := NewSolver(graph, log)
	s.counters = counters
	return s
}

func (s *Solver) GetK() int {
	return s.k
}

func (s *Solver) GetT() int {
	return s.t
}

func (s *Solver) GetState() *DistState {
	return s.state
}

// Solve computes single-source shortest paths from source. Reached vertices
// map to their distance, reached non-source vertices to their predecessor;
// unreached vertices are omitted from both maps. An absent source yields
// empty maps.
func (s *Solver) Solve(source da.Index) (map[da.Index]float64, map[da.Index]da.Index) {
	distances := make(map[da.Index]float64)
	predecessors := make(map[da.Index]da.Index)

	if !s.graph.HasVertex(source) {
		return distances, predecessors
	}

	n := s.graph.NumberOfVertices()
	s.state = NewDistState(n)
	s.state.SetDist(source, 0)

	level := TopLevel(n, s.t)
	s.bmssp(level, pkg.INF_WEIGHT, []da.Index{source})

	for v := da.Index(0); v < da.Index(n); v++ {
		d := s.state.GetDist(v)
		if d < pkg.INF_WEIGHT {
			distances[v] = d
		}
		if s.state.HasPred(v) {
			predecessors[v] = s.state.GetPred(v)
		}
	}

	return distances, predecessors
}
