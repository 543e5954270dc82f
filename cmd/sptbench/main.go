package main

import (
	"flag"
	"time"

	"github.com/lintang-b-s/netgraph/pkg"
	"github.com/lintang-b-s/netgraph/pkg/analysis"
	"github.com/lintang-b-s/netgraph/pkg/concurrent"
	"github.com/lintang-b-s/netgraph/pkg/datastructure"
	"github.com/lintang-b-s/netgraph/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	graphFile  = flag.String("graph", "./data/network.graph", "graph file written by cmd/builder")
	numRoots   = flag.Int("n", 100, "number of random roots")
	numWorkers = flag.Int("workers", 8, "number of concurrent workers")
	criterion  = flag.Int("criterion", 0, "cost criterion index")
	seed       = flag.Uint64("seed", 42, "rng seed")
)

type sptResult struct {
	root      datastructure.Index
	reachable int
	settled   int
	elapsed   time.Duration
}

// compute shortest path trees from random roots concurrently and report how
// much of the graph each root reaches. useful for sizing and for spotting
// disconnected extracts.
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

	n := graph.NumberOfVertices()
	if n == 0 {
		log.Fatal("graph has no vertices")
	}

	rng := rand.New(rand.NewSource(*seed))

	pool := concurrent.NewWorkerPool[datastructure.Index, sptResult](*numWorkers, *numRoots)

	pool.Start(func(root datastructure.Index) sptResult {
		start := time.Now()
		dijkstra := analysis.NewDijkstra(graph, *criterion)
		_, cost, err := dijkstra.ShortestPathTree(root)
		if err != nil {
			log.Error("shortest path tree failed", zap.Uint32("root", uint32(root)), zap.Error(err))
			return sptResult{root: root}
		}
		reachable := 0
		for _, c := range cost {
			if datastructure.Lt(c, pkg.INF_WEIGHT) {
				reachable++
			}
		}
		return sptResult{
			root:      root,
			reachable: reachable,
			settled:   dijkstra.NumSettledNodes(),
			elapsed:   time.Since(start),
		}
	})

	for i := 0; i < *numRoots; i++ {
		pool.AddJob(datastructure.Index(rng.Intn(n)))
	}
	pool.Close()

	go pool.Wait()

	totalReachable := 0
	var totalElapsed time.Duration
	count := 0
	for res := range pool.CollectResults() {
		totalReachable += res.reachable
		totalElapsed += res.elapsed
		count++
	}

	if count > 0 {
		log.Info("spt benchmark done",
			zap.Int("roots", count),
			zap.Int("vertices", n),
			zap.Float64("avg_reachable", float64(totalReachable)/float64(count)),
			zap.Duration("avg_elapsed", totalElapsed/time.Duration(count)))
	}
}
