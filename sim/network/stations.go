// Package network loads the bike-share network description: the station
// configuration (JSON) and the ride log (CSV).
package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gargshiv/bikeshare/sim"
)

// StationFile is the top-level shape of a station configuration file.
type StationFile struct {
	Stations []StationRecord `json:"stations"`
}

// StationRecord is one station as published by the operator's feed.
// Numeric fields may be encoded as JSON numbers or strings.
type StationRecord struct {
	ID             flexString  `json:"n"`
	Name           string      `json:"s"`
	Lat            json.Number `json:"la"`
	Lon            json.Number `json:"lo"`
	AvailableBikes json.Number `json:"da"`
	AvailableDocks json.Number `json:"ba"`
}

// flexString accepts either a JSON string or a JSON number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("station id must be a string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// LoadStations reads the station configuration file at path.
func LoadStations(path string) ([]sim.StationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading station file: %w", err)
	}
	return DecodeStations(bytes.NewReader(data))
}

// DecodeStations parses a station configuration document. The result keeps
// the document's order; capacity is available bikes plus available docks.
func DecodeStations(r io.Reader) ([]sim.StationConfig, error) {
	var file StationFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing station file: %w", err)
	}

	configs := make([]sim.StationConfig, 0, len(file.Stations))
	for i, rec := range file.Stations {
		cfg, err := rec.toConfig()
		if err != nil {
			return nil, fmt.Errorf("station %d: %w", i, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (rec StationRecord) toConfig() (sim.StationConfig, error) {
	if rec.ID == "" {
		return sim.StationConfig{}, fmt.Errorf("missing station id")
	}
	lat, err := parseFloat("la", rec.Lat)
	if err != nil {
		return sim.StationConfig{}, err
	}
	lon, err := parseFloat("lo", rec.Lon)
	if err != nil {
		return sim.StationConfig{}, err
	}
	bikes, err := parseCount("da", rec.AvailableBikes)
	if err != nil {
		return sim.StationConfig{}, err
	}
	docks, err := parseCount("ba", rec.AvailableDocks)
	if err != nil {
		return sim.StationConfig{}, err
	}
	return sim.StationConfig{
		ID:           string(rec.ID),
		Name:         rec.Name,
		Location:     sim.Coordinate{Lon: lon, Lat: lat},
		Capacity:     bikes + docks,
		InitialBikes: bikes,
	}, nil
}

func parseFloat(field string, n json.Number) (float64, error) {
	if n == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", field, err)
	}
	return v, nil
}

func parseCount(field string, n json.Number) (int, error) {
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", field, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("field %q: negative count %d", field, v)
	}
	return v, nil
}
