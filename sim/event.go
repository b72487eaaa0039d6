package sim

import (
	"fmt"
	"time"

	"github.com/gargshiv/bikeshare/sim/trace"
)

// EventKind tags the variant of an Event.
type EventKind int

const (
	// RideStart takes a bike from the ride's origin station.
	RideStart EventKind = iota
	// RideEnd returns the bike to the ride's destination station.
	RideEnd
)

func (k EventKind) String() string {
	switch k {
	case RideStart:
		return "RideStart"
	case RideEnd:
		return "RideEnd"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a scheduled unit of work for one ride at a simulated time.
type Event struct {
	Time time.Time
	Kind EventKind
	Ride RideID

	seq uint64 // assigned by EventQueue.Add
}

// NewRideStartEvent creates the start event of a ride.
func NewRideStartEvent(id RideID, ride Ride) Event {
	return Event{Time: ride.StartTime, Kind: RideStart, Ride: id}
}

// NewRideEndEvent creates the end event of a ride.
func NewRideEndEvent(id RideID, ride Ride) Event {
	return Event{Time: ride.EndTime, Kind: RideEnd, Ride: id}
}

// Op is a station mutation requested by an event.
type Op int

const (
	OpTakeBike Op = iota
	OpReturnBike
)

func (o Op) String() string {
	switch o {
	case OpTakeBike:
		return trace.OpTakeBike
	case OpReturnBike:
		return trace.OpReturnBike
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Effect describes what processing an event does to the simulation:
// one operation on one station, and the events to schedule if the station
// accepts the operation.
type Effect struct {
	Op       Op
	Station  StationIndex
	OnAccept []Event
}

// Process computes the effect of the event for its ride. It does not touch
// any station; the simulator applies the returned effect.
// ride must be the ride the event refers to.
func (e Event) Process(ride Ride) Effect {
	switch e.Kind {
	case RideStart:
		return Effect{
			Op:       OpTakeBike,
			Station:  ride.Origin,
			OnAccept: []Event{NewRideEndEvent(e.Ride, ride)},
		}
	case RideEnd:
		return Effect{
			Op:      OpReturnBike,
			Station: ride.Destination,
		}
	default:
		panic(fmt.Sprintf("Process: unknown event kind %v", e.Kind))
	}
}

func (e Event) String() string {
	return fmt.Sprintf("%s(ride=%d, t=%s)", e.Kind, e.Ride, e.Time.Format(TimeLayout))
}
