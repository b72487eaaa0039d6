package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testStationsJSON = `{"stations": [
	{"n": "A", "s": "Alpha", "la": "43.60", "lo": "-79.40", "da": "1", "ba": "1"},
	{"n": "B", "s": "Bravo", "la": "43.70", "lo": "-79.30", "da": "0", "ba": "2"}
]}`

const testRidesCSV = `2017-06-01 8:00,A,2017-06-01 8:03,B
2017-06-01 8:01,A,2017-06-01 8:04,B
2017-06-01 8:02,Z,2017-06-01 8:05,B
`

// writeNetwork writes the station and ride fixtures to a temp dir and returns
// a config pointing at them.
func writeNetwork(t *testing.T) RunConfig {
	t.Helper()
	dir := t.TempDir()
	stations := filepath.Join(dir, "stations.json")
	rides := filepath.Join(dir, "rides.csv")
	require.NoError(t, os.WriteFile(stations, []byte(testStationsJSON), 0644))
	require.NoError(t, os.WriteFile(rides, []byte(testRidesCSV), 0644))

	cfg := defaultRunConfig()
	cfg.Stations = stations
	cfg.Rides = rides
	cfg.Start = "2017-06-01 08:00"
	cfg.End = "2017-06-01 08:10"
	return cfg
}
