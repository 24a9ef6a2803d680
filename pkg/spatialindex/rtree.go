package spatialindex

import (
	"math"

	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/geo"
	"github.com/lintang-b-s/Frontierx/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[VertexPoint]
}

// VertexPoint indexes one graph vertex by its coordinate so query
// coordinates can be snapped to a vertex id before running the solver.
type VertexPoint struct {
	id  datastructure.Index
	lat float64
	lon float64
}

func (vp VertexPoint) GetId() datastructure.Index {
	return vp.id
}

func (vp VertexPoint) GetLat() float64 {
	return vp.lat
}

func (vp VertexPoint) GetLon() float64 {
	return vp.lon
}

func newVertexPoint(id datastructure.Index, lat, lon float64) VertexPoint {
	return VertexPoint{
		id:  id,
		lat: lat,
		lon: lon,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[VertexPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every vertex of a coordinate-carrying graph, each leaf with
// a bounding box of radius boundingBoxRadius (in km).
func (rt *Rtree) Build(graph *datastructure.Graph, boundingBoxRadius float64, log *zap.Logger) error {
	if !graph.HasCoordinates() {
		return util.WrapErrorf(nil, util.ErrBadParamInput,
			"spatial index needs a graph with vertex coordinates")
	}

	log.Info("Building R-tree spatial index...")

	for v := datastructure.Index(0); v < datastructure.Index(graph.NumberOfVertices()); v++ {
		lat, lon := graph.GetVertexLat(v), graph.GetVertexLon(v)

		lowerLat, lowerLon := geo.GetDestinationPoint(lat, lon, 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(lat, lon, 45, boundingBoxRadius)

		rt.tr.Insert([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
			newVertexPoint(v, lat, lon))
	}

	log.Info("R-tree spatial index built.", zap.Int("vertices", graph.NumberOfVertices()))
	return nil
}

// SearchWithinRadius returns the vertices within radius (in km) of the query
// point.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []VertexPoint {
	// box corners sit radius*sqrt(2) away on the diagonals so the box covers
	// the whole search circle; hits are then filtered by their real distance
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius*math.Sqrt2)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius*math.Sqrt2)

	results := make([]VertexPoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data VertexPoint) bool {
			if geo.CalculateHaversineDistance(qLat, qLon, data.lat, data.lon) <= radius {
				results = append(results, data)
			}
			return true
		})
	return results
}

// SnapToNearestVertex snaps a query coordinate to the closest indexed
// vertex within radius (in km). Reports false when nothing is nearby.
func (rt *Rtree) SnapToNearestVertex(qLat, qLon, radius float64) (datastructure.Index, bool) {
	candidates := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	bestDist := math.MaxFloat64
	for _, c := range candidates {
		d := geo.CalculateHaversineDistance(qLat, qLon, c.lat, c.lon)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best.id, true
}
