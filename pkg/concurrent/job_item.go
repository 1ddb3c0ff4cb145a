package concurrent

import "github.com/AgnesBressan/AirRouteAM/pkg/datastructure"

// QueryJob one start of a batch query; Index is its position in the request.
type QueryJob struct {
	Index          int
	Start          string
	CommercialOnly bool
}

type SaveMunicipalityJob struct {
	Name   string
	Record datastructure.MunicipalityRecord
}

type AirportEntry struct {
	Municipality string  `json:"municipio"`
	Name         string  `json:"nome"`
	IATA         string  `json:"iata,omitempty"`
	Commercial   bool    `json:"comercial"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
}

type SaveAirportCellJob struct {
	Cell     string
	Airports []AirportEntry
}

type JobI interface {
	QueryJob | SaveMunicipalityJob | SaveAirportCellJob
}

type JobFunc[T JobI, G any] func(job T) G
