package sim

import "time"

// Renderer observes the simulation once per simulated minute.
//
// RenderFrame may block until the frame is acknowledged but must not retain
// or mutate the frame's contents across calls. After the window ends the
// simulator calls WindowClosed repeatedly until it returns true.
type Renderer interface {
	RenderFrame(f Frame)
	WindowClosed() bool
}

// Frame is a snapshot of everything drawable at one simulated minute.
type Frame struct {
	Time     time.Time  `json:"time"`
	Stations []Station  `json:"stations"`
	InFlight []RideView `json:"in_flight"`
}

// RideView describes an in-flight ride for drawing.
type RideView struct {
	ID          RideID     `json:"id"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Location    Coordinate `json:"location"` // interpolated between origin and destination
}

// Frame returns a snapshot of the current state at sim.Clock.
func (sim *Simulator) Frame() Frame {
	f := Frame{
		Time:     sim.Clock,
		Stations: sim.Stations(),
		InFlight: make([]RideView, 0, len(sim.inFlight)),
	}
	for _, id := range sim.inFlight {
		ride := sim.rides[id]
		origin := sim.stations[ride.Origin]
		dest := sim.stations[ride.Destination]
		f.InFlight = append(f.InFlight, RideView{
			ID:          id,
			Origin:      origin.ID,
			Destination: dest.ID,
			StartTime:   ride.StartTime,
			EndTime:     ride.EndTime,
			Location:    interpolate(origin.Location, dest.Location, progress(ride, sim.Clock)),
		})
	}
	return f
}

// progress returns the fraction of the ride completed at now, clamped to [0, 1].
func progress(ride Ride, now time.Time) float64 {
	total := ride.EndTime.Sub(ride.StartTime)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(ride.StartTime)) / float64(total)
	return min(max(p, 0), 1)
}

func interpolate(a, b Coordinate, p float64) Coordinate {
	return Coordinate{
		Lon: a.Lon + (b.Lon-a.Lon)*p,
		Lat: a.Lat + (b.Lat-a.Lat)*p,
	}
}

// nopRenderer draws nothing and closes immediately.
type nopRenderer struct{}

func (nopRenderer) RenderFrame(Frame) {}

func (nopRenderer) WindowClosed() bool { return true }
