package kv

import (
	"encoding/json"

	"github.com/AgnesBressan/AirRouteAM/pkg/concurrent"
	"github.com/AgnesBressan/AirRouteAM/pkg/datastructure"
	"github.com/DataDog/zstd"
	"github.com/rotisserie/eris"
)

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}
	return bb, nil
}

func compressJSON(v any) ([]byte, error) {
	bb, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrap(err, "kv: encode value")
	}
	out, err := Compress(bb)
	if err != nil {
		return nil, eris.Wrap(err, "kv: compress value")
	}
	return out, nil
}

func decompressJSON(bbCompressed []byte, v any) error {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return eris.Wrap(err, "kv: decompress value")
	}
	if err := json.Unmarshal(bb, v); err != nil {
		return eris.Wrap(err, "kv: decode value")
	}
	return nil
}

func CompressMunicipality(rec datastructure.MunicipalityRecord) ([]byte, error) {
	return compressJSON(rec)
}

func LoadMunicipality(bb []byte) (datastructure.MunicipalityRecord, error) {
	var rec datastructure.MunicipalityRecord
	err := decompressJSON(bb, &rec)
	return rec, err
}

func CompressAirports(airports []concurrent.AirportEntry) ([]byte, error) {
	return compressJSON(airports)
}

func LoadAirports(bb []byte) ([]concurrent.AirportEntry, error) {
	var airports []concurrent.AirportEntry
	err := decompressJSON(bb, &airports)
	return airports, err
}
