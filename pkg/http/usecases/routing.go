package usecases

import (
	"github.com/lintang-b-s/Frontierx/pkg"
	"github.com/lintang-b-s/Frontierx/pkg/concurrent"
	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/geo"
	"github.com/lintang-b-s/Frontierx/pkg/sssp"
	"github.com/lintang-b-s/Frontierx/pkg/util"
	"go.uber.org/zap"
)

type RoutingService struct {
	log          *zap.Logger
	graph        *datastructure.Graph
	spatialIndex SpatialIndex
	searchRadius float64
	numWorkers   int
}

func NewRoutingService(log *zap.Logger, graph *datastructure.Graph, spatialIndex SpatialIndex,
	searchRadius float64, numWorkers int) *RoutingService {
	return &RoutingService{
		log:          log,
		graph:        graph,
		spatialIndex: spatialIndex,
		searchRadius: searchRadius,
		numWorkers:   numWorkers,
	}
}

// ShortestPath snaps both coordinates to graph vertices and runs one
// single-source query from the origin. Returns travel time, path length in
// meter, the encoded polyline, and the vertex path.
func (rs *RoutingService) ShortestPath(origLat, origLon, dstLat, dstLon float64) (float64, float64, string, []datastructure.Index, error) {
	if rs.spatialIndex == nil {
		return 0, 0, "", nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"graph has no coordinates, use /api/sssp with vertex ids instead")
	}

	src, okSrc := rs.spatialIndex.SnapToNearestVertex(origLat, origLon, rs.searchRadius)
	if !okSrc {
		return 0, 0, "", nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no vertex within %f km of origin %f,%f", rs.searchRadius, origLat, origLon)
	}
	dst, okDst := rs.spatialIndex.SnapToNearestVertex(dstLat, dstLon, rs.searchRadius)
	if !okDst {
		return 0, 0, "", nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no vertex within %f km of destination %f,%f", rs.searchRadius, dstLat, dstLon)
	}

	solver := sssp.NewSolver(rs.graph, rs.log)
	distances, predecessors := solver.Solve(src)

	eta := sssp.GetDistance(distances, dst)
	if datastructure.Ge(eta, pkg.INF_WEIGHT) {
		return 0, 0, "", nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no path found from %f,%f to %f,%f", origLat, origLon, dstLat, dstLon)
	}

	path := sssp.ReconstructPath(dst, predecessors, src)
	if len(path) == 0 {
		return 0, 0, "", nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no path found from %f,%f to %f,%f", origLat, origLon, dstLat, dstLon)
	}

	coords := make([]geo.Coordinate, 0, len(path))
	distMeter := 0.0
	for i, v := range path {
		coords = append(coords, geo.NewCoordinate(rs.graph.GetVertexLat(v), rs.graph.GetVertexLon(v)))
		if i > 0 {
			prev := path[i-1]
			distMeter += geo.CalculateHaversineDistance(
				rs.graph.GetVertexLat(prev), rs.graph.GetVertexLon(prev),
				rs.graph.GetVertexLat(v), rs.graph.GetVertexLon(v)) * 1000.0
		}
	}
	pathPolyline := geo.PolylineFromCoords(coords)

	return eta, distMeter, pathPolyline, path, nil
}

// SSSP runs a full single-source query identified by vertex id.
func (rs *RoutingService) SSSP(source datastructure.Index) (map[datastructure.Index]float64, map[datastructure.Index]datastructure.Index, error) {
	if !rs.graph.HasVertex(source) {
		return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"source %d is not a vertex of the graph", source)
	}

	solver := sssp.NewSolver(rs.graph, rs.log)
	distances, predecessors := solver.Solve(source)
	return distances, predecessors, nil
}

type matrixJob struct {
	row    int
	source datastructure.Index
}

type matrixRow struct {
	row       int
	durations []float64
}

// DistanceMatrix computes travel times from every source to every target.
// Rows fan out over the worker pool; each job owns its solver and state, so
// every individual solve stays sequential.
func (rs *RoutingService) DistanceMatrix(sources, targets []datastructure.Index) ([][]float64, error) {
	for _, s := range sources {
		if !rs.graph.HasVertex(s) {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "source %d is not a vertex of the graph", s)
		}
	}
	for _, t := range targets {
		if !rs.graph.HasVertex(t) {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "target %d is not a vertex of the graph", t)
		}
	}

	pool := concurrent.NewWorkerPool[matrixJob, matrixRow](rs.numWorkers, len(sources))

	pool.Start(func(job matrixJob) matrixRow {
		solver := sssp.NewSolver(rs.graph, rs.log)
		distances, _ := solver.Solve(job.source)

		durations := make([]float64, len(targets))
		for i, t := range targets {
			durations[i] = sssp.GetDistance(distances, t)
		}
		return matrixRow{row: job.row, durations: durations}
	})

	for i, s := range sources {
		pool.AddJob(matrixJob{row: i, source: s})
	}
	pool.Close()
	pool.Wait()

	out := make([][]float64, len(sources))
	for row := range pool.CollectResults() {
		out[row.row] = row.durations
	}
	return out, nil
}
