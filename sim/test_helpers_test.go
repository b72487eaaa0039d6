package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// station builds a StationConfig fixture.
func station(id, name string, capacity, bikes int) StationConfig {
	return StationConfig{ID: id, Name: name, Capacity: capacity, InitialBikes: bikes}
}

// ride builds a RideRecord between two station ids using minutes after t0.
func ride(from string, startMin int, to string, endMin int) RideRecord {
	return RideRecord{
		StartTime:      at(startMin),
		StartStationID: from,
		EndTime:        at(endMin),
		EndStationID:   to,
	}
}

func newTestSimulator(t *testing.T, stations []StationConfig, rides []RideRecord) *Simulator {
	t.Helper()
	s, err := NewSimulator(stations, rides, SimConfig{})
	require.NoError(t, err)
	return s
}

// recordingRenderer keeps every frame and closes the window after
// closeAfter polls.
type recordingRenderer struct {
	frames     []Frame
	polls      int
	closeAfter int
}

func (r *recordingRenderer) RenderFrame(f Frame) {
	r.frames = append(r.frames, f)
}

func (r *recordingRenderer) WindowClosed() bool {
	r.polls++
	return r.polls > r.closeAfter
}

func mustStation(t *testing.T, s *Simulator, id string) Station {
	t.Helper()
	st, ok := s.Station(id)
	require.True(t, ok, "station %q not found", id)
	return st
}
