// Aggregates per-station counters into the end-of-run leaderboard:
// the station with the most ride starts, ride ends, minutes without bikes
// and minutes without free docks.

package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gargshiv/bikeshare/sim/trace"
)

// Keys of Statistics.AsMap, one per tracked metric.
const (
	StatMaxStart               = "max_start"
	StatMaxEnd                 = "max_end"
	StatMaxTimeLowAvailability = "max_time_low_availability"
	StatMaxTimeLowUnoccupied   = "max_time_low_unoccupied"
)

// Leader is the station holding the maximum value of one metric.
type Leader struct {
	Name  string `json:"station"`
	Value int    `json:"value"`
}

// Statistics is the leaderboard computed at the end of a run.
// Ties go to the lexicographically smallest station name.
type Statistics struct {
	MaxStart           Leader
	MaxEnd             Leader
	MaxLowAvailability Leader
	MaxLowDocks        Leader
	Empty              bool // no stations; every Leader is the zero value
}

// CalculateStatistics scans all stations and returns the leader of each metric.
// It only reads simulator state, so repeated calls return identical results.
func (sim *Simulator) CalculateStatistics() Statistics {
	stats := Statistics{Empty: len(sim.stations) == 0}
	for i := range sim.stations {
		st := &sim.stations[i]
		first := i == 0
		stats.MaxStart = better(stats.MaxStart, st.Name, st.RidesStarted, first)
		stats.MaxEnd = better(stats.MaxEnd, st.Name, st.RidesEnded, first)
		stats.MaxLowAvailability = better(stats.MaxLowAvailability, st.Name, st.MinutesLowAvailability, first)
		stats.MaxLowDocks = better(stats.MaxLowDocks, st.Name, st.MinutesLowDocks, first)
	}
	return stats
}

// better returns the leader after considering (name, value) against cur.
func better(cur Leader, name string, value int, first bool) Leader {
	if first || value > cur.Value || (value == cur.Value && name < cur.Name) {
		return Leader{Name: name, Value: value}
	}
	return cur
}

// AsMap returns the statistics keyed by metric name.
func (s Statistics) AsMap() map[string]Leader {
	return map[string]Leader{
		StatMaxStart:               s.MaxStart,
		StatMaxEnd:                 s.MaxEnd,
		StatMaxTimeLowAvailability: s.MaxLowAvailability,
		StatMaxTimeLowUnoccupied:   s.MaxLowDocks,
	}
}

// Print displays the leaderboard at the end of the simulation.
func (s Statistics) Print() {
	fmt.Println("=== Simulation Statistics ===")
	if s.Empty {
		fmt.Println("No stations")
		return
	}
	fmt.Printf("Most rides started        : %s (%d)\n", s.MaxStart.Name, s.MaxStart.Value)
	fmt.Printf("Most rides ended          : %s (%d)\n", s.MaxEnd.Name, s.MaxEnd.Value)
	fmt.Printf("Most minutes without bikes: %s (%d)\n", s.MaxLowAvailability.Name, s.MaxLowAvailability.Value)
	fmt.Printf("Most minutes without docks: %s (%d)\n", s.MaxLowDocks.Name, s.MaxLowDocks.Value)
}

// Report is the JSON document written at the end of a run.
type Report struct {
	RunID         string              `json:"run_id"`
	Start         string              `json:"start"`
	End           string              `json:"end"`
	Statistics    map[string]Leader   `json:"statistics"`
	Stations      int                 `json:"stations"`
	Rides         int                 `json:"rides"`
	DroppedRides  int                 `json:"dropped_rides"`
	InFlightAtEnd int                 `json:"in_flight_at_end"`
	PendingEvents int                 `json:"pending_events"`
	Rejections    *trace.TraceSummary `json:"rejections,omitempty"`
}

// Report assembles the end-of-run report for the window [start, end].
func (sim *Simulator) Report(start, end time.Time) Report {
	r := Report{
		RunID:         sim.RunID.String(),
		Start:         start.Format(TimeLayout),
		End:           end.Format(TimeLayout),
		Statistics:    sim.CalculateStatistics().AsMap(),
		Stations:      len(sim.stations),
		Rides:         len(sim.rides),
		DroppedRides:  sim.dropped,
		InFlightAtEnd: len(sim.inFlight),
		PendingEvents: sim.queue.Len(),
	}
	if sim.Trace != nil {
		r.Rejections = trace.Summarize(sim.Trace)
	}
	return r
}

// SaveResults writes the report as indented JSON to fileName.
func (r Report) SaveResults(fileName string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return fmt.Errorf("writing report %s: %w", fileName, err)
	}
	logrus.Debugf("Successfully wrote report to '%s'", fileName)
	return nil
}
