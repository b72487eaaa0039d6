package network

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gargshiv/bikeshare/sim"
)

// rideColumns is the column order of the ride log. The log has no header row.
var rideColumns = []string{"start_time", "start_station_id", "end_time", "end_station_id"}

// ParseTime parses a ride-log timestamp (YYYY-MM-DD HH:MM) as UTC.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(sim.TimeLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}
	return t, nil
}

// LoadRides reads the ride log at path.
func LoadRides(path string) ([]sim.RideRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ride log: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeRides(file)
}

// DecodeRides parses a ride log. Station ids are not checked here; the
// simulator drops rides that reference unknown stations.
func DecodeRides(r io.Reader) ([]sim.RideRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var records []sim.RideRecord
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", row, err)
		}
		if len(fields) < len(rideColumns) {
			return nil, fmt.Errorf("CSV row %d has %d columns, expected %d", row, len(fields), len(rideColumns))
		}

		rec, err := parseRideRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", row, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRideRecord(fields []string) (sim.RideRecord, error) {
	start, err := ParseTime(fields[0])
	if err != nil {
		return sim.RideRecord{}, err
	}
	end, err := ParseTime(fields[2])
	if err != nil {
		return sim.RideRecord{}, err
	}
	if !start.Before(end) {
		return sim.RideRecord{}, fmt.Errorf("ride ends at %s, not after its start %s",
			end.Format(sim.TimeLayout), start.Format(sim.TimeLayout))
	}
	return sim.RideRecord{
		StartTime:      start,
		StartStationID: strings.TrimSpace(fields[1]),
		EndTime:        end,
		EndStationID:   strings.TrimSpace(fields[3]),
	}, nil
}
