package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gargshiv/bikeshare/sim/internal/testutil"
)

func parseGoldenTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	require.NoError(t, err)
	return ts
}

// TestSimulator_GoldenDataset runs each scenario of testdata/goldendataset.json
// and compares the end-of-window state with the recorded expectations.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			stations := make([]StationConfig, 0, len(tc.Stations))
			for _, gs := range tc.Stations {
				stations = append(stations, station(gs.ID, gs.Name, gs.Capacity, gs.Bikes))
			}
			rides := make([]RideRecord, 0, len(tc.Rides))
			for _, gr := range tc.Rides {
				rides = append(rides, RideRecord{
					StartTime:      parseGoldenTime(t, gr.Start),
					StartStationID: gr.StartStation,
					EndTime:        parseGoldenTime(t, gr.End),
					EndStationID:   gr.EndStation,
				})
			}
			s := newTestSimulator(t, stations, rides)

			require.NoError(t, s.Run(parseGoldenTime(t, tc.Start), parseGoldenTime(t, tc.End), nil))

			want := tc.Metrics
			got := s.CalculateStatistics().AsMap()
			leaders := map[string]testutil.GoldenLeader{
				StatMaxStart:               want.MaxStart,
				StatMaxEnd:                 want.MaxEnd,
				StatMaxTimeLowAvailability: want.MaxTimeLowAvailability,
				StatMaxTimeLowUnoccupied:   want.MaxTimeLowUnoccupied,
			}
			for key, leader := range leaders {
				assert.Equal(t, Leader{Name: leader.Station, Value: leader.Value}, got[key], key)
			}
			for id, bikes := range want.FinalBikes {
				assert.Equal(t, bikes, mustStation(t, s, id).Bikes, "bikes at %s", id)
			}
			assert.Len(t, s.InFlight(), want.InFlight)
			assert.Equal(t, want.PendingEvents, s.PendingEvents())
		})
	}
}
