package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	graphFile  = flag.String("graph", "./data/network.graph", "graph file written by cmd/builder")
	numQueries = flag.Int("n", 1000, "number of random query pairs")
	outFile    = flag.String("out", "./data/queries.csv", "output csv file")
	seed       = flag.Uint64("seed", 42, "rng seed")
)

// generate random origin/destination pairs inside the graph bounding box, for
// load testing the API.
func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	graph, err := datastructure.ReadGraph(*graphFile)
	if err != nil {
		log.Fatal("reading graph file", zap.Error(err))
	}

	minLat, minLon, maxLat, maxLon := graph.BoundingBox()

	f, err := os.Create(*outFile)
	if err != nil {
		log.Fatal("creating output file", zap.Error(err))
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(*seed))

	fmt.Fprintln(f, "origin_lat,origin_lon,destination_lat,destination_lon")
	for i := 0; i < *numQueries; i++ {
		oLat := minLat + rng.Float64()*(maxLat-minLat)
		oLon := minLon + rng.Float64()*(maxLon-minLon)
		dLat := minLat + rng.Float64()*(maxLat-minLat)
		dLon := minLon + rng.Float64()*(maxLon-minLon)
		fmt.Fprintf(f, "%f,%f,%f,%f\n", oLat, oLon, dLat, dLon)
	}

	log.Info("queries written", zap.Int("n", *numQueries), zap.String("file", *outFile))
}
