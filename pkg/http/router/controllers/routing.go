package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/Frontierx/pkg/datastructure"
	helper "github.com/lintang-b-s/Frontierx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/shortestPath", api.shortestPath)
	group.GET("/sssp", api.sssp)
	group.POST("/distanceMatrix", api.distanceMatrix)
}

func (api *routingAPI) validateRequest(w http.ResponseWriter, r *http.Request, request interface{}) bool {
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

func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
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

	if !api.validateRequest(w, r, request) {
		return
	}

	eta, dist, pathPolyline, vertexPath, err := api.routingService.ShortestPath(request.OriginLat, request.OriginLon,
		request.DestinationLat, request.DestinationLon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	vp := make([]uint32, 0, len(vertexPath))
	for _, v := range vertexPath {
		vp = append(vp, uint32(v))
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": NewShortestPathResponse(eta, dist, pathPolyline, vp)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) sssp(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	source, err := strconv.ParseUint(query.Get("source"), 10, 32)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("source is required and must be a valid vertex id"))
		return
	}

	distances, predecessors, err := api.routingService.SSSP(datastructure.Index(source))
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	resp := ssspResponse{
		Source:    uint32(source),
		Reached:   len(distances),
		Distances: make([]vertexDistance, 0, len(distances)),
	}
	for v, d := range distances {
		vd := vertexDistance{Vertex: uint32(v), Distance: d}
		if pred, ok := predecessors[v]; ok {
			predId := uint32(pred)
			vd.Predecessor = &predId
		}
		resp.Distances = append(resp.Distances, vd)
	}
	sort.Slice(resp.Distances, func(i, j int) bool {
		return resp.Distances[i].Vertex < resp.Distances[j].Vertex
	})

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": resp}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) distanceMatrix(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request distanceMatrixRequest

	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if !api.validateRequest(w, r, request) {
		return
	}

	sources := make([]datastructure.Index, 0, len(request.Sources))
	for _, s := range request.Sources {
		sources = append(sources, datastructure.Index(s))
	}
	targets := make([]datastructure.Index, 0, len(request.Targets))
	for _, t := range request.Targets {
		targets = append(targets, datastructure.Index(t))
	}

	durations, err := api.routingService.DistanceMatrix(sources, targets)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK,
		envelope{"data": distanceMatrixResponse{Durations: durations}}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
