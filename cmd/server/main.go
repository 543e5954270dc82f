package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/netgraph/pkg"
	"github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/http"
	"github.com/lintang-b-s/netgraph/pkg/http/usecases"
	"github.com/lintang-b-s/netgraph/pkg/logger"
	"github.com/lintang-b-s/netgraph/pkg/spatialindex"
	"github.com/lintang-b-s/netgraph/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile             = flag.String("graph", "./data/network.graph", "graph file written by cmd/builder")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	searchRadius          = flag.Float64("search_radius", pkg.DEFAULT_SNAP_RADIUS_KM, "query snap radius in km")
	useRateLimit          = flag.Bool("rate_limit", false, "enable per-client rate limiting")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	// config file is optional, ports and timeouts have viper defaults
	if err := util.ReadConfig(); err != nil {
		log.Info("no config file found, using defaults", zap.Error(err))
	}

	graph, err := datastructure.ReadGraph(*graphFile)
	if err != nil {
		log.Fatal("reading graph file", zap.Error(err))
	}
	log.Info("graph loaded",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Strings("criteria", graph.Criteria()))

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, *leafBoundingBoxRadius, log)

	api := http.NewServer(log)

	networkService := usecases.NewNetworkService(log, graph, rtree, *searchRadius)

	ctx, cancel := context.WithCancel(context.Background())

	if _, err := api.Use(ctx, log, *useRateLimit, networkService); err != nil {
		log.Fatal("starting API", zap.Error(err))
	}

	sig := http.GracefulShutdown()

	log.Info("netgraph server stopped", zap.String("signal", sig.String()))
	cancel()
}
