package sssp

import (
	"time"

	"github.com/lintang-b-s/Frontierx/pkg"
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
)

// pivotState is the per-vertex scratch of one pivot search: tentative
// distance inside the k sweeps, the relaxed-in parent, and membership in the
// witnessed set W.
type pivotState struct {
	distance    float64
	predecessor da.Index
	hasPred     bool
	inW         bool
}

// findPivots shrinks the frontier before the block queue is seeded. It runs
// k relaxation sweeps from frontier (Bellman-Ford style, bounded by b),
// collects every improved vertex into W, and then keeps as pivots only the
// frontier vertices whose relaxation forest subtree reaches >= k vertices.
// When W outgrows k*|frontier| the sweeps stop early and the whole frontier
// is returned as pivots.
//
// The improved local distances are flushed into the shared state before
// returning, so every member of W is complete within b.
//
// O(min(k^2 |S|, k |W|)).
func (s *Solver) findPivots(b float64, frontier []da.Index) ([]da.Index, []da.Index) {
	defer s.counters.ObservePhase(pkg.PHASE_FIND_PIVOTS, time.Now())

	local := make(map[da.Index]*pivotState, len(frontier)*(s.k+1))

	w := make([]da.Index, 0, len(frontier)*(s.k+1))
	for _, v := range frontier {
		if _, ok := local[v]; ok {
			continue
		}
		local[v] = &pivotState{
			distance:    s.state.GetDist(v),
			predecessor: da.INVALID_VERTEX_ID,
			inW:         true,
		}
		w = append(w, v)
	}

	frontierSize := len(w)
	wPrev := w

	earlyExit := false
	for step := 0; step < s.k && !earlyExit; step++ {
		wCurrent := make([]da.Index, 0)

		for _, u := range wPrev {
			uState := local[u]

			s.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
				s.counters.AddRelaxations(1)

				v := e.GetHead()
				newDist := uState.distance + e.GetWeight()
				if newDist >= b {
					return
				}

				vState, seen := local[v]
				if !seen {
					vState = &pivotState{distance: pkg.INF_WEIGHT, predecessor: da.INVALID_VERTEX_ID}
					local[v] = vState
				}
				if !seen || newDist < vState.distance {
					vState.distance = newDist
					vState.predecessor = u
					vState.hasPred = true
					if !vState.inW {
						vState.inW = true
						wCurrent = append(wCurrent, v)
					}
				}
			})
		}

		w = append(w, wCurrent...)

		if len(w) > s.k*frontierSize {
			earlyExit = true
			break
		}

		wPrev = wCurrent
		if len(wCurrent) == 0 {
			break
		}
	}

	s.flushLocalDistances(local)

	if earlyExit {
		// pivots collapse to the input frontier
		return frontier, w
	}

	pivots := s.collectPivots(local, w)
	if len(pivots) == 0 {
		pivots = frontier
	}

	return pivots, w
}

// collectPivots builds the relaxation forest from the parent pointers and
// keeps the roots whose subtree holds at least k vertices.
func (s *Solver) collectPivots(local map[da.Index]*pivotState, w []da.Index) []da.Index {
	children := make(map[da.Index][]da.Index, len(local))
	hasParent := make(map[da.Index]struct{}, len(local))

	for v, vState := range local {
		if vState.hasPred && vState.inW {
			children[vState.predecessor] = append(children[vState.predecessor], v)
			hasParent[v] = struct{}{}
		}
	}

	pivots := make([]da.Index, 0)
	for _, root := range w {
		if _, ok := hasParent[root]; ok {
			continue
		}
		if s.treeSize(root, children) >= s.k {
			pivots = append(pivots, root)
		}
	}
	return pivots
}

// treeSize counts the subtree rooted at root with an explicit stack; the
// forest can be as deep as the k sweeps make it.
func (s *Solver) treeSize(root da.Index, children map[da.Index][]da.Index) int {
	size := 0
	stack := []da.Index{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		stack = append(stack, children[v]...)
	}
	return size
}

// flushLocalDistances lowers the shared estimates to the local ones found by
// the sweeps. Only strict improvements are written, keeping the shared state
// monotone.
func (s *Solver) flushLocalDistances(local map[da.Index]*pivotState) {
	for v, vState := range local {
		if vState.inW && vState.distance < s.state.GetDist(v) {
			s.state.SetDist(v, vState.distance)
			if vState.hasPred {
				s.state.SetPred(v, vState.predecessor)
			}
		}
	}
}
