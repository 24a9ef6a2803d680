package main

import (
	"flag"

	"github.com/lintang-b-s/Frontierx/pkg/logger"
	"github.com/lintang-b-s/Frontierx/pkg/osmparser"
	"github.com/lintang-b-s/Frontierx/pkg/preprocessor"
	"go.uber.org/zap"
)

var (
	mapFile        = flag.String("map", "./data/map.osm.pbf", "openstreetmap pbf extract")
	outFile        = flag.String("out", "./data/graph.frontierx", "output graph file")
	constantDegree = flag.Bool("constant_degree", false, "apply the constant-degree transformation before writing")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	parser := osmparser.NewOsmParser()
	graph, err := parser.Parse(*mapFile, logger)
	if err != nil {
		panic(err)
	}

	if *constantDegree {
		dt := preprocessor.NewDegreeTransformer(logger)
		transformed, _, err := dt.Transform(graph)
		if err != nil {
			panic(err)
		}
		ca := preprocessor.AnalyzeComplexity(graph, transformed)
		logger.Info("degree transformation complexity",
			zap.Float64("vertex_expansion", ca.VertexExpansionRatio),
			zap.Float64("edge_expansion", ca.EdgeExpansionRatio),
			zap.Bool("maintains_linear_bound", ca.MaintainsLinearBound))
		graph = transformed
	}

	if err := graph.WriteGraph(*outFile); err != nil {
		panic(err)
	}
	logger.Info("graph written",
		zap.String("file", *outFile),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))
}
