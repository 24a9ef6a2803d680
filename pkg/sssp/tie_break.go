package sssp

import (
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
)

// ComparePaths imposes a lexicographic total order on the shortest paths to
// a and b: distance first, then hop count, then the predecessor id sequence
// walked back from the endpoint. The main algorithm does not depend on this
// order; it exists for callers that need a deterministic ranking of
// equal-length paths.
func ComparePaths(a, b da.Index, state *DistState) int {
	distA := state.GetDist(a)
	distB := state.GetDist(b)
	if distA < distB {
		return -1
	}
	if distA > distB {
		return 1
	}

	hopsA := countHops(a, state)
	hopsB := countHops(b, state)
	if hopsA < hopsB {
		return -1
	}
	if hopsA > hopsB {
		return 1
	}

	seqA := predSequence(a, state)
	seqB := predSequence(b, state)
	minLen := len(seqA)
	if len(seqB) < minLen {
		minLen = len(seqB)
	}
	for i := 0; i < minLen; i++ {
		if seqA[i] < seqB[i] {
			return -1
		}
		if seqA[i] > seqB[i] {
			return 1
		}
	}
	if len(seqA) < len(seqB) {
		return -1
	}
	if len(seqA) > len(seqB) {
		return 1
	}
	return 0
}

func countHops(v da.Index, state *DistState) int {
	hops := 0
	for state.HasPred(v) {
		hops++
		v = state.GetPred(v)
	}
	return hops
}

func predSequence(v da.Index, state *DistState) []da.Index {
	seq := []da.Index{v}
	for state.HasPred(v) {
		v = state.GetPred(v)
		seq = append(seq, v)
	}
	return seq
}
