package controllers

import (
	"github.com/lintang-b-s/netgraph/pkg/geo"
)

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"required,min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"required,min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"required,min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"required,min=-180,max=180"`
	Criterion      string  `json:"criterion"`
}

type shortestPathResponse struct {
	Cost float64 `json:"cost"`
	Dist float64 `json:"distance"`
	Path string  `json:"path"`
}

func NewShortestPathResponse(cost, dist float64, path string) shortestPathResponse {
	return shortestPathResponse{
		Cost: cost,
		Dist: dist,
		Path: path,
	}
}

type serviceAreaRequest struct {
	OriginLat float64 `json:"origin_lat" validate:"required,min=-90,max=90"`
	OriginLon float64 `json:"origin_lon" validate:"required,min=-180,max=180"`
	Budget    float64 `json:"budget" validate:"required,gt=0"`
	Criterion string  `json:"criterion"`
}

type serviceAreaResponse struct {
	Inside   []geo.Coordinate `json:"inside"`
	Boundary []geo.Coordinate `json:"boundary"`
}

func NewServiceAreaResponse(inside, boundary []geo.Coordinate) serviceAreaResponse {
	return serviceAreaResponse{
		Inside:   inside,
		Boundary: boundary,
	}
}

type tiePointRequest struct {
	Lat float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon float64 `json:"lon" validate:"required,min=-180,max=180"`
}

type tiePointResponse struct {
	Tied geo.Coordinate `json:"tied"`
}

func NewTiePointResponse(tied geo.Coordinate) tiePointResponse {
	return tiePointResponse{Tied: tied}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
