package controllers

import (
	"github.com/lintang-b-s/netgraph/pkg/geo"
)

type NetworkService interface {
	ShortestPath(origLat, origLon, dstLat, dstLon float64, criterion string) (float64, float64, string, error)
	ServiceArea(lat, lon, budget float64, criterion string) ([]geo.Coordinate, []geo.Coordinate, error)
	TiePoint(lat, lon float64) (geo.Coordinate, error)
}
