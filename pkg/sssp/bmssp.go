package sssp

import (
	"time"

	"github.com/lintang-b-s/Frontierx/pkg"
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
)

// bmssp is one frame of the bounded multi-source shortest path recursion.
// The frontier holds complete vertices whose outgoing edges are not yet
// exploited; |frontier| <= 2^(level*t). Returns (b', U) with b' <= b and U a
// set of complete vertices with distance < b'. The U sets of the recursive
// sub-calls inside one frame are pairwise disjoint.
func (s *Solver) bmssp(level int, b float64, frontier []da.Index) (float64, []da.Index) {
	defer s.counters.ObservePhase(pkg.PHASE_BMSSP, time.Now())

	if len(frontier) == 0 {
		return b, nil
	}
	if level <= 0 {
		return s.baseCase(b, frontier[0])
	}

	pivots, witnessed := s.findPivots(b, frontier)

	m := pow2Capped((level - 1) * s.t)
	queue := da.NewBlockQueue(m, b)
	for _, p := range pivots {
		if val := s.state.GetDist(p); val < b {
			queue.Insert(p, val)
			s.counters.AddQueueInserts(1)
		}
	}

	inU := make(map[da.Index]struct{})
	settled := make([]da.Index, 0)
	currentBp := b

	workloadCap := s.k * pow2Capped(level*s.t)

	prependBuf := make([]da.BlockQueueEntry, 0, 1)

	for !queue.IsEmpty() {
		pulled, bi := queue.Pull()
		s.counters.AddQueuePulls(1)

		subFrontier := make([]da.Index, 0, len(pulled))
		for _, kv := range pulled {
			subFrontier = append(subFrontier, kv.GetKey())
		}
		if len(subFrontier) == 0 {
			break
		}

		subBp, subU := s.bmssp(level-1, bi, subFrontier)
		if subBp < currentBp {
			currentBp = subBp
		}

		for _, u := range subU {
			if _, ok := inU[u]; !ok {
				inU[u] = struct{}{}
				settled = append(settled, u)
			}

			du := s.state.GetDist(u)
			s.graph.ForOutEdgesOf(u, func(e *da.OutEdge) {
				s.counters.AddRelaxations(1)

				v := e.GetHead()
				if v == u {
					// self loops never shorten a path; a zero-weight one
					// would only overwrite pred with v itself
					return
				}

				alt := du + e.GetWeight()
				dv := s.state.GetDist(v)

				// <= instead of < so that an edge relaxed at a deeper level
				// can be relaxed again here when a better path into u
				// appears; this keeps the sub-call U sets disjoint
				if alt < b && alt <= dv {
					if alt < dv {
						s.state.SetDist(v, alt)
					}
					s.state.SetPred(v, u)
					queue.Insert(v, alt)
					s.counters.AddQueueInserts(1)
				} else if alt >= currentBp && alt < bi {
					// already past the frame's running bound but below the
					// pull boundary: by construction smaller than anything
					// left in the queue, so it goes in at the front
					prependBuf = prependBuf[:0]
					prependBuf = append(prependBuf, da.NewBlockQueueEntry(v, alt))
					queue.BatchPrepend(prependBuf)
					s.counters.AddBatchPrepends(1)
				}
			})
		}

		if len(inU) > workloadCap {
			// frame workload exceeded; whatever is left in the queue is
			// re-discovered by ancestor frames through the smaller b'
			break
		}
	}

	for _, wv := range witnessed {
		if _, ok := inU[wv]; !ok {
			inU[wv] = struct{}{}
			settled = append(settled, wv)
		}
	}

	return currentBp, settled
}
