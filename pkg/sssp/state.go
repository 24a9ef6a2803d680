package sssp

import (
	"github.com/lintang-b-s/Frontierx/pkg"
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
)

// DistState holds the tentative distance and predecessor of every vertex,
// shared by the whole recursion. Distance updates are monotonically
// non-increasing; a vertex whose estimate equals its true distance stays
// complete for the rest of the run.
type DistState struct {
	dist []float64
	pred []da.Index
}

func NewDistState(numVertices int) *DistState {
	dist := make([]float64, numVertices)
	pred := make([]da.Index, numVertices)
	for i := range dist {
		dist[i] = pkg.INF_WEIGHT
		pred[i] = da.INVALID_VERTEX_ID
	}
	return &DistState{
		dist: dist,
		pred: pred,
	}
}

func (s *DistState) GetDist(v da.Index) float64 {
	return s.dist[v]
}

// SetDist lowers the estimate of v. Raising an estimate is a programming
// error; guarded only in debug builds.
func (s *DistState) SetDist(v da.Index, d float64) {
	if pkg.DEBUG && d > s.dist[v] {
		panic("distance estimate must never increase")
	}
	s.dist[v] = d
}

func (s *DistState) GetPred(v da.Index) da.Index {
	return s.pred[v]
}

func (s *DistState) SetPred(v, u da.Index) {
	s.pred[v] = u
}

func (s *DistState) HasPred(v da.Index) bool {
	return s.pred[v] != da.INVALID_VERTEX_ID
}

func (s *DistState) NumVertices() int {
	return len(s.dist)
}
