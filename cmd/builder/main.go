package main

import (
	"flag"

	"github.com/lintang-b-s/netgraph/pkg"
	"github.com/lintang-b-s/netgraph/pkg/costfunction"
	"github.com/lintang-b-s/netgraph/pkg/director"
	"github.com/lintang-b-s/netgraph/pkg/logger"
	"github.com/lintang-b-s/netgraph/pkg/osmreader"
	"go.uber.org/zap"
)

var (
	mapFile           = flag.String("map", "./data/map.osm.pbf", "openstreetmap pbf file to build the graph from")
	outFile           = flag.String("out", "./data/network.graph", "output graph file")
	defaultSpeed      = flag.Float64("default_speed", 40.0, "fallback speed (km/h) for ways without a maxspeed tag")
	topologyTolerance = flag.Float64("topology_tolerance", 0.0, "endpoint merge tolerance in meter, 0 = exact match")
)

// km/h to meter/second
const speedToMetric = 1000.0 / 3600.0

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	reader := osmreader.NewOsmReader(log)
	records, err := reader.Read(*mapFile)
	if err != nil {
		log.Fatal("reading osm file", zap.Error(err))
	}

	d := director.NewLineDirector(records, osmreader.FieldOneway,
		osmreader.DirectionMarkerForward, osmreader.DirectionMarkerReverse, osmreader.DirectionMarkerBoth,
		pkg.DIRECTION_BOTH)
	d.AddStrategy(costfunction.NewDistanceStrategy())
	d.AddStrategy(costfunction.NewSpeedStrategy(osmreader.FieldMaxSpeed, *defaultSpeed, speedToMetric))

	builder := director.NewGraphBuilder(d.StrategyNames(), *topologyTolerance)
	if _, err := d.MakeGraph(builder, nil); err != nil {
		log.Fatal("building graph", zap.Error(err))
	}

	graph := builder.Graph()
	log.Info("graph built",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	if err := graph.WriteGraph(*outFile); err != nil {
		log.Fatal("writing graph file", zap.Error(err))
	}
	log.Info("graph written", zap.String("file", *outFile))
}
