package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
	"github.com/lintang-b-s/Frontierx/pkg/http"
	"github.com/lintang-b-s/Frontierx/pkg/http/usecases"
	"github.com/lintang-b-s/Frontierx/pkg/logger"
	"github.com/lintang-b-s/Frontierx/pkg/spatialindex"
	"github.com/lintang-b-s/Frontierx/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile             = flag.String("graph", "./data/graph.frontierx", "prepared graph file (see cmd/preprocessor)")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	snapRadius            = flag.Float64("snap_radius", 1.0, "search radius in km when snapping query coordinates")
	matrixWorkers         = flag.Int("matrix_workers", 4, "worker pool size for distance matrix queries")
	useRateLimit          = flag.Bool("rate_limit", false, "enable the api rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	graph, err := datastructure.ReadGraph(*graphFile)
	if err != nil {
		panic(err)
	}
	logger.Info("graph loaded",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	var snapIndex usecases.SpatialIndex
	if graph.HasCoordinates() {
		rtree := spatialindex.NewRtree()
		if err := rtree.Build(graph, *leafBoundingBoxRadius, logger); err != nil {
			panic(err)
		}
		snapIndex = rtree
	} else {
		logger.Info("graph carries no coordinates, /api/shortestPath disabled")
	}

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, graph, snapIndex, *snapRadius, *matrixWorkers)

	ctx, cleanup := newContext()
	if _, err := api.Use(ctx, logger, *useRateLimit, routingService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("Frontierx SSSP Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func newContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, cancel
}
