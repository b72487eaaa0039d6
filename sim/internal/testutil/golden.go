// Package testutil provides shared test infrastructure for the bikeshare
// simulator: the golden scenario dataset and helpers to load it.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one small network, its ride log, the window to simulate
// and the state expected when the window closes.
type GoldenTestCase struct {
	Name     string          `json:"name"`
	Stations []GoldenStation `json:"stations"`
	Rides    []GoldenRide    `json:"rides"`
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Metrics  GoldenMetrics   `json:"metrics"`
}

// GoldenStation is a station's configuration.
type GoldenStation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Bikes    int    `json:"bikes"`
}

// GoldenRide is one ride-log row.
type GoldenRide struct {
	Start        string `json:"start"`
	StartStation string `json:"start_station"`
	End          string `json:"end"`
	EndStation   string `json:"end_station"`
}

// GoldenLeader is the expected leader of one statistic.
type GoldenLeader struct {
	Station string `json:"station"`
	Value   int    `json:"value"`
}

// GoldenMetrics represents the expected outcome of a golden test case.
type GoldenMetrics struct {
	MaxStart               GoldenLeader `json:"max_start"`
	MaxEnd                 GoldenLeader `json:"max_end"`
	MaxTimeLowAvailability GoldenLeader `json:"max_time_low_availability"`
	MaxTimeLowUnoccupied   GoldenLeader `json:"max_time_low_unoccupied"`

	FinalBikes    map[string]int `json:"final_bikes"` // station ID → bikes docked at window end
	InFlight      int            `json:"in_flight"`
	PendingEvents int            `json:"pending_events"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}
