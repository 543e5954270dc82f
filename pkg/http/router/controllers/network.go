package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/netgraph/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type networkAPI struct {
	networkService NetworkService
	log            *zap.Logger
}

func New(networkService NetworkService, log *zap.Logger) *networkAPI {
	return &networkAPI{
		networkService: networkService,
		log:            log,
	}
}

func (api *networkAPI) Routes(group *helper.RouteGroup) {
	group.GET("/shortestPath", api.shortestPath)
	group.GET("/serviceArea", api.serviceArea)
	group.GET("/tiePoint", api.tiePoint)
}

func (api *networkAPI) validateStruct(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func (api *networkAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request shortestPathRequest
		err     error
	)

	query := r.URL.Query()

	request.OriginLat, err = strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lat is required and must be a valid float"))
		return
	}
	request.OriginLon, err = strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lon is required and must be a valid float"))
		return
	}
	request.DestinationLat, err = strconv.ParseFloat(query.Get("destination_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lat is required and must be a valid float"))
		return
	}
	request.DestinationLon, err = strconv.ParseFloat(query.Get("destination_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lon is required and must be a valid float"))
		return
	}
	request.Criterion = query.Get("criterion")

	if !api.validateStruct(w, r, request) {
		return
	}

	cost, dist, pathPolyline, err := api.networkService.ShortestPath(request.OriginLat, request.OriginLon,
		request.DestinationLat, request.DestinationLon, request.Criterion)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewShortestPathResponse(cost, dist, pathPolyline)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *networkAPI) serviceArea(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request serviceAreaRequest
		err     error
	)

	query := r.URL.Query()

	request.OriginLat, err = strconv.ParseFloat(query.Get("origin_lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lat is required and must be a valid float"))
		return
	}
	request.OriginLon, err = strconv.ParseFloat(query.Get("origin_lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lon is required and must be a valid float"))
		return
	}
	request.Budget, err = strconv.ParseFloat(query.Get("budget"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("budget is required and must be a valid float"))
		return
	}
	request.Criterion = query.Get("criterion")

	if !api.validateStruct(w, r, request) {
		return
	}

	inside, boundary, err := api.networkService.ServiceArea(request.OriginLat, request.OriginLon,
		request.Budget, request.Criterion)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewServiceAreaResponse(inside, boundary)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *networkAPI) tiePoint(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request tiePointRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}

	if !api.validateStruct(w, r, request) {
		return
	}

	tied, err := api.networkService.TiePoint(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewTiePointResponse(tied)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
