package network

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gargshiv/bikeshare/sim"
)

func TestParseTime_SingleDigitHour_Accepted(t *testing.T) {
	got, err := ParseTime("2017-06-01 8:05")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2017, 6, 1, 8, 5, 0, 0, time.UTC), got)
}

func TestParseTime_WrongFormat_ReturnsError(t *testing.T) {
	_, err := ParseTime("06/01/2017 08:05")
	assert.Error(t, err)
}

func TestDecodeRides_ValidLog_ParsesAllRows(t *testing.T) {
	// GIVEN a two-row ride log without a header
	log := "2017-06-01 08:00,7000,2017-06-01 08:15,7001\n" +
		"2017-06-01 08:03, 7001 ,2017-06-01 08:04, 7002\n"

	// WHEN decoded
	got, err := DecodeRides(strings.NewReader(log))

	// THEN both rows are returned in order with trimmed station ids
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sim.RideRecord{
		StartTime:      time.Date(2017, 6, 1, 8, 0, 0, 0, time.UTC),
		StartStationID: "7000",
		EndTime:        time.Date(2017, 6, 1, 8, 15, 0, 0, time.UTC),
		EndStationID:   "7001",
	}, got[0])
	assert.Equal(t, "7001", got[1].StartStationID)
	assert.Equal(t, "7002", got[1].EndStationID)
}

func TestDecodeRides_UnknownStationIDs_KeptForSimulator(t *testing.T) {
	// Station resolution happens in the simulator, not the loader.
	got, err := DecodeRides(strings.NewReader("2017-06-01 08:00,nowhere,2017-06-01 08:15,7001\n"))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "nowhere", got[0].StartStationID)
}

func TestDecodeRides_InvalidRows_ReportRowNumber(t *testing.T) {
	tests := []struct {
		name string
		log  string
	}{
		{"too few columns", "2017-06-01 08:00,7000,2017-06-01 08:15\n"},
		{"bad start time", "yesterday,7000,2017-06-01 08:15,7001\n"},
		{"bad end time", "2017-06-01 08:00,7000,soon,7001\n"},
		{"end not after start", "2017-06-01 08:15,7000,2017-06-01 08:15,7001\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRides(strings.NewReader("2017-06-01 07:00,1,2017-06-01 07:10,2\n" + tt.log))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "row 2")
		})
	}
}

func TestDecodeRides_EmptyLog_NoRecords(t *testing.T) {
	got, err := DecodeRides(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadRides_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rides.csv")
	require.NoError(t, os.WriteFile(path, []byte("2017-06-01 08:00,1,2017-06-01 08:10,2\n"), 0644))

	got, err := LoadRides(path)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
