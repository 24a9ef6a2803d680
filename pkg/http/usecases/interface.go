package usecases

import (
	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
)

type SpatialIndex interface {
	SnapToNearestVertex(qLat, qLon, radius float64) (datastructure.Index, bool)
}
