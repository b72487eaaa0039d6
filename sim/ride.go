package sim

import (
	"fmt"
	"time"
)

// RideID is a ride's position in the simulator's ride list.
type RideID int

// RideRecord is one entry of the ride log, before station ids are resolved.
type RideRecord struct {
	StartTime      time.Time
	StartStationID string
	EndTime        time.Time
	EndStationID   string
}

// Ride is a single trip from Origin to Destination over [StartTime, EndTime].
// Rides are immutable once the simulator is built.
type Ride struct {
	Origin      StationIndex
	Destination StationIndex
	StartTime   time.Time
	EndTime     time.Time
}

func (r Ride) String() string {
	return fmt.Sprintf("Ride{%d→%d, %s–%s}", r.Origin, r.Destination,
		r.StartTime.Format(TimeLayout), r.EndTime.Format(TimeLayout))
}
