package datastructure

// Dataset is the raw municipality document as stored on disk:
//
//	{"municipios": {"Manaus": {"coordenadas": {...}, "vizinhos": {...}, "aeroporto": {...}}}}
type Dataset struct {
	Municipalities map[string]MunicipalityRecord `json:"municipios" validate:"required,dive"`
}

// MunicipalityRecord every field is optional.
type MunicipalityRecord struct {
	Coordinates *Coordinate               `json:"coordenadas,omitempty"`
	Neighbors   map[string]NeighborRecord `json:"vizinhos,omitempty" validate:"dive"`
	Airport     *Airport                  `json:"aeroporto,omitempty"`
}

type NeighborRecord struct {
	DistanceKm float64 `json:"distancia_km" validate:"gte=0"`
}

type Airport struct {
	Name       string `json:"nome"`
	IATA       string `json:"iata,omitempty"`
	Commercial *bool  `json:"comercial,omitempty"`
}

// IsCommercial an airport without a stated commercial flag counts as commercial.
func (a Airport) IsCommercial() bool {
	return a.Commercial == nil || *a.Commercial
}
