// sim/simulator.go
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gargshiv/bikeshare/sim/trace"
)

// TimeLayout is the timestamp format of the ride log and of log output.
const TimeLayout = "2006-01-02 15:04"

// Step is the fixed amount of simulated time advanced per iteration.
const Step = time.Minute

var (
	// ErrInvalidWindow is returned by Run when end is before start.
	ErrInvalidWindow = errors.New("simulation window end is before start")
	// ErrAlreadyRan is returned by Run on a simulator that has already run.
	ErrAlreadyRan = errors.New("simulator has already run")
)

// SimConfig holds optional simulator settings. The zero value is valid:
// a fresh run ID is generated and tracing is disabled.
type SimConfig struct {
	RunID      uuid.UUID
	TraceLevel trace.TraceLevel
}

// NewSimConfig creates a SimConfig with the given run ID and trace level.
func NewSimConfig(runID uuid.UUID, level trace.TraceLevel) SimConfig {
	return SimConfig{RunID: runID, TraceLevel: level}
}

// Simulator is the core object that holds simulated time, the station and ride
// tables, the event queue and the in-flight rides.
// A Simulator is driven by a single goroutine and is not safe for concurrent use.
type Simulator struct {
	RunID uuid.UUID
	Clock time.Time
	// Trace is nil unless tracing is enabled.
	Trace *trace.SimulationTrace

	stations     []Station
	stationIndex map[string]StationIndex
	rides        []Ride
	queue        *EventQueue
	// rides whose bike has left the origin and not yet reached a destination,
	// in the order their start events were processed
	inFlight []RideID
	dropped  int
	ran      bool

	log *logrus.Entry
}

// NewSimulator builds the station table from stations and resolves every ride
// record against it. Rides naming an unknown station on either end are dropped.
// Returns an error on duplicate station ids or an invalid station.
func NewSimulator(stations []StationConfig, rides []RideRecord, cfg SimConfig) (*Simulator, error) {
	if !trace.IsValidTraceLevel(string(cfg.TraceLevel)) {
		return nil, fmt.Errorf("unknown trace level %q", cfg.TraceLevel)
	}
	runID := cfg.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}

	s := &Simulator{
		RunID:        runID,
		stations:     make([]Station, 0, len(stations)),
		stationIndex: make(map[string]StationIndex, len(stations)),
		rides:        make([]Ride, 0, len(rides)),
		queue:        NewEventQueue(),
		inFlight:     make([]RideID, 0),
		log:          logrus.WithField("run", runID.String()),
	}
	if cfg.TraceLevel == trace.TraceLevelRejections {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel})
	}

	for _, sc := range stations {
		if _, dup := s.stationIndex[sc.ID]; dup {
			return nil, fmt.Errorf("duplicate station id %q", sc.ID)
		}
		st, err := NewStation(sc)
		if err != nil {
			return nil, err
		}
		s.stationIndex[sc.ID] = StationIndex(len(s.stations))
		s.stations = append(s.stations, st)
	}

	for _, rec := range rides {
		origin, okStart := s.stationIndex[rec.StartStationID]
		dest, okEnd := s.stationIndex[rec.EndStationID]
		if !okStart || !okEnd {
			s.dropped++
			s.log.Debugf("dropping ride %s→%s: unknown station", rec.StartStationID, rec.EndStationID)
			continue
		}
		s.rides = append(s.rides, Ride{
			Origin:      origin,
			Destination: dest,
			StartTime:   rec.StartTime,
			EndTime:     rec.EndTime,
		})
	}

	s.log.Infof("Simulator ready: %d stations, %d rides (%d dropped)", len(s.stations), len(s.rides), s.dropped)
	return s, nil
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	sim.queue.Add(ev)
}

// Run simulates every minute from start to end inclusive, rendering one frame
// per minute, then polls r until it reports the window closed.
//
// A zero-width window (start == end) renders the seeded state once and
// processes no events.
func (sim *Simulator) Run(start, end time.Time, r Renderer) error {
	if sim.ran {
		return ErrAlreadyRan
	}
	if end.Before(start) {
		return fmt.Errorf("%w: start=%s end=%s", ErrInvalidWindow, start.Format(TimeLayout), end.Format(TimeLayout))
	}
	if r == nil {
		r = nopRenderer{}
	}
	sim.ran = true

	seeded := sim.seed(start)
	sim.log.Infof("Starting simulation %s → %s with %d seeded rides",
		start.Format(TimeLayout), end.Format(TimeLayout), seeded)

	sim.Clock = start
	if start.Equal(end) {
		r.RenderFrame(sim.Frame())
	} else {
		for now := start; !now.After(end); now = now.Add(Step) {
			sim.Clock = now
			if err := sim.Drain(now); err != nil {
				return err
			}
			if now.Before(end) {
				sim.tick()
			}
			r.RenderFrame(sim.Frame())
		}
	}
	sim.log.Infof("[%s] Simulation window ended, %d rides in flight, %d events pending",
		sim.Clock.Format(TimeLayout), len(sim.inFlight), sim.queue.Len())

	for !r.WindowClosed() {
	}
	return nil
}

// seed schedules a RideStart for every ride starting at or after start.
func (sim *Simulator) seed(start time.Time) int {
	n := 0
	for i, ride := range sim.rides {
		if ride.StartTime.Before(start) {
			continue
		}
		sim.Schedule(NewRideStartEvent(RideID(i), ride))
		n++
	}
	return n
}

// Drain processes every pending event due at or before now, including events
// spawned while draining.
func (sim *Simulator) Drain(now time.Time) error {
	for {
		next, ok := sim.queue.Peek()
		if !ok || next.Time.After(now) {
			return nil
		}
		ev, err := sim.queue.Remove()
		if err != nil {
			return fmt.Errorf("draining events at %s: %w", now.Format(TimeLayout), err)
		}
		sim.dispatch(ev)
	}
}

// dispatch processes one event and applies its effect.
func (sim *Simulator) dispatch(ev Event) {
	eff := ev.Process(sim.rides[ev.Ride])
	accepted := sim.apply(eff)
	sim.log.Debugf("[%s] %s at station %s accepted=%t",
		ev.Time.Format(TimeLayout), ev, sim.stations[eff.Station].ID, accepted)

	switch ev.Kind {
	case RideStart:
		if accepted {
			sim.inFlight = append(sim.inFlight, ev.Ride)
		}
	case RideEnd:
		// an unreturnable bike leaves tracking as well
		sim.removeInFlight(ev.Ride)
	}

	if !accepted {
		sim.recordRejection(ev, eff)
		return
	}
	for _, next := range eff.OnAccept {
		sim.Schedule(next)
	}
}

// apply performs the effect's station operation and reports whether the
// station accepted it.
func (sim *Simulator) apply(eff Effect) bool {
	st := &sim.stations[eff.Station]
	switch eff.Op {
	case OpTakeBike:
		return st.ApplyRideStart()
	case OpReturnBike:
		return st.ApplyRideEnd()
	default:
		panic(fmt.Sprintf("apply: unknown op %v", eff.Op))
	}
}

func (sim *Simulator) recordRejection(ev Event, eff Effect) {
	if sim.Trace == nil {
		return
	}
	reason := "no bikes available"
	if eff.Op == OpReturnBike {
		reason = "no free docks"
	}
	sim.Trace.RecordRejection(trace.RejectionRecord{
		RideID:    int(ev.Ride),
		Clock:     ev.Time,
		StationID: sim.stations[eff.Station].ID,
		Op:        eff.Op.String(),
		Reason:    reason,
	})
}

func (sim *Simulator) removeInFlight(id RideID) {
	for i, r := range sim.inFlight {
		if r == id {
			sim.inFlight = append(sim.inFlight[:i], sim.inFlight[i+1:]...)
			return
		}
	}
}

// tick advances every station's low-resource counters by one minute.
func (sim *Simulator) tick() {
	for i := range sim.stations {
		sim.stations[i].TickLowResource()
	}
}

// Stations returns a copy of the station table.
func (sim *Simulator) Stations() []Station {
	out := make([]Station, len(sim.stations))
	copy(out, sim.stations)
	return out
}

// Station returns a copy of the station with the given id.
func (sim *Simulator) Station(id string) (Station, bool) {
	idx, ok := sim.stationIndex[id]
	if !ok {
		return Station{}, false
	}
	return sim.stations[idx], true
}

// Rides returns a copy of the resolved ride list; RideID indexes into it.
func (sim *Simulator) Rides() []Ride {
	out := make([]Ride, len(sim.rides))
	copy(out, sim.rides)
	return out
}

// InFlight returns the rides currently between stations.
func (sim *Simulator) InFlight() []RideID {
	out := make([]RideID, len(sim.inFlight))
	copy(out, sim.inFlight)
	return out
}

// DroppedRides returns the number of ride records rejected for naming an
// unknown station.
func (sim *Simulator) DroppedRides() int {
	return sim.dropped
}

// PendingEvents returns the number of events still queued.
func (sim *Simulator) PendingEvents() int {
	return sim.queue.Len()
}
