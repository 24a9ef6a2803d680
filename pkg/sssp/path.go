package sssp

import (
	"github.com/lintang-b-s/Frontierx/pkg"
	da "github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/util"
)

// GetDistance reads a distance map, treating absent vertices as unreachable.
func GetDistance(distances map[da.Index]float64, v da.Index) float64 {
	if d, ok := distances[v]; ok {
		return d
	}
	return pkg.INF_WEIGHT
}

func GetDistances(distances map[da.Index]float64, vs []da.Index) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		out = append(out, GetDistance(distances, v))
	}
	return out
}

// ReconstructPath follows predecessors from target back to source and
// returns the path in source -> target order. An empty slice is returned
// when the walk does not reach source or runs into a predecessor cycle.
func ReconstructPath(target da.Index, predecessors map[da.Index]da.Index, source da.Index) []da.Index {
	reversed := make([]da.Index, 0)
	seen := make(map[da.Index]struct{})

	v := target
	for {
		if _, ok := seen[v]; ok {
			return []da.Index{}
		}
		seen[v] = struct{}{}
		reversed = append(reversed, v)

		u, ok := predecessors[v]
		if !ok {
			break
		}
		v = u
	}

	path := util.ReverseG(reversed)
	if len(path) == 0 || path[0] != source {
		return []da.Index{}
	}
	return path
}

// ReconstructPaths resolves a batch of targets against the same predecessor
// map.
func ReconstructPaths(targets []da.Index, predecessors map[da.Index]da.Index, source da.Index) map[da.Index][]da.Index {
	out := make(map[da.Index][]da.Index, len(targets))
	for _, v := range targets {
		out[v] = ReconstructPath(v, predecessors, source)
	}
	return out
}

// ReconstructPathFromState is the DistState-backed variant used before the
// result maps are materialized.
func ReconstructPathFromState(target da.Index, state *DistState, source da.Index) []da.Index {
	reversed := make([]da.Index, 0)
	seen := make(map[da.Index]struct{})

	v := target
	for {
		if _, ok := seen[v]; ok {
			return []da.Index{}
		}
		seen[v] = struct{}{}
		reversed = append(reversed, v)

		if !state.HasPred(v) {
			break
		}
		v = state.GetPred(v)
	}

	path := util.ReverseG(reversed)
	if len(path) == 0 || path[0] != source {
		return []da.Index{}
	}
	return path
}
