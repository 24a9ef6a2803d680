package sssp

import (
	"time"

	"github.com/lintang-b-s/Frontierx/pkg"
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
)

// baseCase is the level-0 recursion: a Dijkstra from the single complete
// frontier vertex x, bounded by b and truncated after k+1 settled vertices.
// Returns the new bound b' <= b and the settled set U; every vertex in U is
// complete with distance < b. When the search is truncated, b' is the
// distance of the last settled vertex, which is itself in U.
//
// O(|U| log k) with the decrease-key heap.
func (s *Solver) baseCase(b float64, x da.Index) (float64, []da.Index) {
	defer s.counters.ObservePhase(pkg.PHASE_BASE_CASE, time.Now())

	bPrime := b
	settled := make([]da.Index, 0, s.k+1)

	if !s.graph.HasVertex(x) {
		return bPrime, settled
	}

	if s.state.GetDist(x) == pkg.INF_WEIGHT {
		s.state.SetDist(x, 0)
	}

	heap := da.NewBinaryHeap[da.Index]()
	heap.Preallocate(s.k + 2)
	heapNodes := make(map[da.Index]*da.PriorityQueueNode[da.Index], s.k+2)

	xNode := da.NewPriorityQueueNode(s.state.GetDist(x), x)
	heap.Insert(xNode)
	heapNodes[x] = xNode

	inU := make(map[da.Index]struct{}, s.k+2)
	truncated := false

	for !heap.IsEmpty() {
		if len(inU) >= s.k+1 {
			truncated = true
			break
		}

		uNode, err := heap.ExtractMin()
		if err != nil {
			break
		}
		s.counters.AddHeapOps(1)

		u := uNode.GetItem()
		du := uNode.GetRank()
		delete(heapNodes, u)

		if du >= b {
			bPrime = b
			break
		}

		if _, ok := inU[u]; !ok {
			inU[u] = struct{}{}
			settled = append(settled, u)
		}

		s.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
			s.counters.AddRelaxations(1)

			v := e.GetHead()
			if v == u {
				// a self loop can never shorten a path, and a zero-weight
				// one would tie forever
				return
			}

			alt := du + e.GetWeight()
			dv := s.state.GetDist(v)

			if alt > b || alt > dv {
				return
			}

			// alt <= dv: on a strict improvement lower the estimate; on a
			// tie only the predecessor is overwritten (last writer wins)
			if alt < dv {
				s.state.SetDist(v, alt)
			}
			s.state.SetPred(v, u)

			if _, done := inU[v]; done {
				// already settled; its estimate cannot drop anymore, and a
				// tie re-insert would keep the heap spinning
				return
			}

			if vNode, ok := heapNodes[v]; ok {
				heap.DecreaseKey(vNode, alt)
			} else {
				vNode = da.NewPriorityQueueNode(alt, v)
				heap.Insert(vNode)
				heapNodes[v] = vNode
			}
			s.counters.AddHeapOps(1)
		})
	}

	if truncated || len(inU) >= s.k+1 {
		if len(settled) > 0 {
			bPrime = s.state.GetDist(settled[len(settled)-1])
		}
	}

	return bPrime, settled
}
