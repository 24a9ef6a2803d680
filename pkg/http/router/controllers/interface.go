package controllers

import (
	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
)

type RoutingService interface {
	ShortestPath(origLat, origLon, dstLat, dstLon float64) (float64, float64, string, []datastructure.Index, error)
	SSSP(source datastructure.Index) (map[datastructure.Index]float64, map[datastructure.Index]datastructure.Index, error)
	DistanceMatrix(sources, targets []datastructure.Index) ([][]float64, error)
}
