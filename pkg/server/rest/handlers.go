package rest

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/AgnesBressan/AirRouteAM/pkg/engine/snapping"
	"github.com/AgnesBressan/AirRouteAM/pkg/server"
	"github.com/AgnesBressan/AirRouteAM/pkg/service"
	"github.com/AgnesBressan/AirRouteAM/pkg/util"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	NearestAirport(ctx context.Context, start string, commercialOnly bool) (service.Route, error)
	NearestAirportBatch(ctx context.Context, starts []string, commercialOnly bool) []service.BatchResult
	NearestAirportFromCoordinate(ctx context.Context, lat, lon float64, commercialOnly bool) (service.Route, snapping.Candidate, error)
	NearbyAirports(ctx context.Context, lat, lon, radiusKm float64, commercialOnly bool) ([]service.NearbyAirport, error)
	Municipalities(ctx context.Context) []string
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
	validate     *validator.Validate
	trans        ut.Translator
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &NavigationHandler{svc: svc, promeMetrics: m, validate: validate, trans: trans}

	r.Group(func(r chi.Router) {
		r.Route("/api/airports", func(r chi.Router) {
			r.Post("/nearest", handler.nearestAirport)
			r.Post("/nearest/batch", handler.nearestAirportBatch)
			r.Post("/nearest/coordinate", handler.nearestAirportFromCoordinate)
			r.Get("/nearby", handler.nearbyAirports)
			r.Get("/municipalities", handler.municipalities)
		})
	})
}

func (h *NavigationHandler) validateStruct(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	if err := h.validate.Struct(data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return false
	}
	return true
}

func (h *NavigationHandler) countOutcome(err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		var qerr *service.QueryError
		if errors.As(err, &qerr) && qerr.Kind != "" {
			outcome = string(qerr.Kind)
		}
	}
	h.promeMetrics.QueryCount.WithLabelValues(outcome).Inc()
}

// NearestAirportRequest model info
//
//	@Description	request body for the nearest airport query from a municipality
type NearestAirportRequest struct {
	Start          string `json:"start" validate:"required"`
	CommercialOnly bool   `json:"commercial_only"`
}

func (s *NearestAirportRequest) Bind(r *http.Request) error {
	return nil
}

// AirportResponse model info
//
//	@Description	airport found at the end of a route
type AirportResponse struct {
	Name       string `json:"name"`
	IATA       string `json:"iata"`
	Commercial bool   `json:"commercial"`
}

// RouteResponse model info
//
//	@Description	response body for the nearest airport query
type RouteResponse struct {
	Start         string          `json:"start"`
	Path          []string        `json:"path"`
	Goal          string          `json:"goal"`
	DistanceKm    float64         `json:"distance_km"`
	Airport       AirportResponse `json:"airport"`
	Hops          int             `json:"hops"`
	ExpandedNodes int             `json:"expanded_nodes"`
	Heuristic     string          `json:"heuristic"`
	Polyline      string          `json:"polyline,omitempty"`
	ElapsedMs     float64         `json:"elapsed_ms"`
}

func NewRouteResponse(route service.Route) *RouteResponse {
	iata := route.Airport.IATA
	if iata == "" {
		iata = "N/A"
	}
	return &RouteResponse{
		Start:      route.Start,
		Path:       route.Path,
		Goal:       route.Goal,
		DistanceKm: util.RoundFloat(route.DistanceKm, 2),
		Airport: AirportResponse{
			Name:       route.Airport.Name,
			IATA:       iata,
			Commercial: route.Airport.IsCommercial(),
		},
		Hops:          route.Hops,
		ExpandedNodes: route.ExpandedNodes,
		Heuristic:     string(route.Heuristic),
		Polyline:      route.Polyline,
		ElapsedMs:     route.ElapsedMs,
	}
}

// nearestAirport
//
//	@Summary		nearest reachable airport from a municipality.
//	@Description	cheapest road route (A*) from the start municipality to an airport, optionally commercial airports only
//	@Tags			airports
//	@Param			body	body	NearestAirportRequest	true	"start municipality and airport filter"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/airports/nearest [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) nearestAirport(w http.ResponseWriter, r *http.Request) {
	data := &NearestAirportRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateStruct(w, r, *data) {
		return
	}

	route, err := h.svc.NearestAirport(r.Context(), data.Start, data.CommercialOnly)
	h.countOutcome(err)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteResponse(route))
}

// NearestAirportBatchRequest model info
//
//	@Description	request body for nearest airport queries from many municipalities
type NearestAirportBatchRequest struct {
	Starts         []string `json:"starts" validate:"required,min=1,max=1000,dive,required"`
	CommercialOnly bool     `json:"commercial_only"`
}

func (s *NearestAirportBatchRequest) Bind(r *http.Request) error {
	if len(s.Starts) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// BatchItemResponse model info
//
//	@Description	outcome of one start of a batch query, either route or error
type BatchItemResponse struct {
	Start string         `json:"start"`
	Route *RouteResponse `json:"route,omitempty"`
	Error *ErrResponse   `json:"error,omitempty"`
}

// NearestAirportBatchResponse model info
//
//	@Description	response body for the batch query, in request order
type NearestAirportBatchResponse struct {
	Results []BatchItemResponse `json:"results"`
}

func NewNearestAirportBatchResponse(results []service.BatchResult) *NearestAirportBatchResponse {
	resp := &NearestAirportBatchResponse{Results: make([]BatchItemResponse, len(results))}
	for i, res := range results {
		item := BatchItemResponse{Start: res.Start}
		if res.Err != nil {
			item.Error = ErrChi(res.Err)
		} else {
			item.Route = NewRouteResponse(*res.Route)
		}
		resp.Results[i] = item
	}
	return resp
}

// nearestAirportBatch
//
//	@Summary		nearest reachable airport from many municipalities.
//	@Description	independent nearest airport queries run concurrently; results keep the order of starts
//	@Tags			airports
//	@Param			body	body	NearestAirportBatchRequest	true	"start municipalities and airport filter"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/airports/nearest/batch [post]
//	@Success		200	{object}	NearestAirportBatchResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) nearestAirportBatch(w http.ResponseWriter, r *http.Request) {
	data := &NearestAirportBatchRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateStruct(w, r, *data) {
		return
	}

	results := h.svc.NearestAirportBatch(r.Context(), data.Starts, data.CommercialOnly)
	for _, res := range results {
		h.countOutcome(res.Err)
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewNearestAirportBatchResponse(results))
}

// CoordinateRequest model info
//
//	@Description	request body for the nearest airport query from a coordinate
type CoordinateRequest struct {
	Lat            *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon            *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	CommercialOnly bool     `json:"commercial_only"`
}

func (s *CoordinateRequest) Bind(r *http.Request) error {
	return nil
}

// SnappedResponse model info
//
//	@Description	municipality the coordinate was snapped to
type SnappedResponse struct {
	Municipality string  `json:"municipality"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	DistanceKm   float64 `json:"distance_km"`
}

// CoordinateRouteResponse model info
//
//	@Description	response body for the nearest airport query from a coordinate
type CoordinateRouteResponse struct {
	Snapped SnappedResponse `json:"snapped"`
	Route   *RouteResponse  `json:"route"`
}

// nearestAirportFromCoordinate
//
//	@Summary		nearest reachable airport from a coordinate.
//	@Description	snaps the coordinate to the closest municipality seat, then runs the nearest airport query from it
//	@Tags			airports
//	@Param			body	body	CoordinateRequest	true	"coordinate and airport filter"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/airports/nearest/coordinate [post]
//	@Success		200	{object}	CoordinateRouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) nearestAirportFromCoordinate(w http.ResponseWriter, r *http.Request) {
	data := &CoordinateRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateStruct(w, r, *data) {
		return
	}

	route, snapped, err := h.svc.NearestAirportFromCoordinate(r.Context(), *data.Lat, *data.Lon, data.CommercialOnly)
	h.countOutcome(err)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &CoordinateRouteResponse{
		Snapped: SnappedResponse{
			Municipality: snapped.ID,
			Lat:          snapped.Coordinate.Lat,
			Lon:          snapped.Coordinate.Lon,
			DistanceKm:   util.RoundFloat(snapped.DistanceKm, 3),
		},
		Route: NewRouteResponse(route),
	})
}

// NearbyAirportResponse model info
//
//	@Description	airport within the search radius
type NearbyAirportResponse struct {
	Municipality string          `json:"municipality"`
	Airport      AirportResponse `json:"airport"`
	Lat          float64         `json:"lat"`
	Lon          float64         `json:"lon"`
	DistanceKm   float64         `json:"distance_km"`
}

// NearbyAirportsResponse model info
//
//	@Description	response body for the nearby airports query, nearest first
type NearbyAirportsResponse struct {
	Airports []NearbyAirportResponse `json:"airports"`
}

func NewNearbyAirportsResponse(airports []service.NearbyAirport) *NearbyAirportsResponse {
	resp := &NearbyAirportsResponse{Airports: make([]NearbyAirportResponse, len(airports))}
	for i, a := range airports {
		iata := a.Airport.IATA
		if iata == "" {
			iata = "N/A"
		}
		resp.Airports[i] = NearbyAirportResponse{
			Municipality: a.Municipality,
			Airport: AirportResponse{
				Name:       a.Airport.Name,
				IATA:       iata,
				Commercial: a.Airport.IsCommercial(),
			},
			Lat:        a.Coordinate.Lat,
			Lon:        a.Coordinate.Lon,
			DistanceKm: util.RoundFloat(a.DistanceKm, 2),
		}
	}
	return resp
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, server.WrapErrorf(nil, server.ErrBadParamInput, "query parameter %s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, server.WrapErrorf(err, server.ErrBadParamInput, "query parameter %s must be a number", name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, server.WrapErrorf(nil, server.ErrBadParamInput, "query parameter %s must be finite", name)
	}
	return v, nil
}

// nearbyAirports
//
//	@Summary		airports within a straight line radius of a coordinate.
//	@Description	airports whose great-circle distance to the coordinate is at most radius_km, nearest first
//	@Tags			airports
//	@Param			lat				query	number	true	"latitude"
//	@Param			lon				query	number	true	"longitude"
//	@Param			radius_km		query	number	true	"search radius in km"
//	@Param			commercial_only	query	bool	false	"only commercial airports"
//	@Produce		application/json
//	@Router			/airports/nearby [get]
//	@Success		200	{object}	NearbyAirportsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) nearbyAirports(w http.ResponseWriter, r *http.Request) {
	lat, err := parseFloatParam(r, "lat")
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	lon, err := parseFloatParam(r, "lon")
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	radius, err := parseFloatParam(r, "radius_km")
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	commercialOnly := false
	if raw := r.URL.Query().Get("commercial_only"); raw != "" {
		if commercialOnly, err = strconv.ParseBool(raw); err != nil {
			render.Render(w, r, ErrInvalidRequest(errors.New("commercial_only must be a boolean")))
			return
		}
	}

	airports, err := h.svc.NearbyAirports(r.Context(), lat, lon, radius, commercialOnly)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewNearbyAirportsResponse(airports))
}

// MunicipalitiesResponse model info
//
//	@Description	every municipality identifier, sorted
type MunicipalitiesResponse struct {
	Count          int      `json:"count"`
	Municipalities []string `json:"municipalities"`
}

// municipalities
//
//	@Summary		list municipalities.
//	@Description	identifiers accepted as start of the nearest airport query
//	@Tags			airports
//	@Produce		application/json
//	@Router			/airports/municipalities [get]
//	@Success		200	{object}	MunicipalitiesResponse
func (h *NavigationHandler) municipalities(w http.ResponseWriter, r *http.Request) {
	ids := h.svc.Municipalities(r.Context())
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &MunicipalitiesResponse{Count: len(ids), Municipalities: ids})
}
