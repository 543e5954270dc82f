package usecases

import (
	"github.com/lintang-b-s/netgraph/pkg/datastructure"
)

type SpatialIndex interface {
	SnapToNearestVertex(graph *datastructure.Graph, qLat, qLon, radius float64) datastructure.Index
}
