package sim

import "fmt"

// StationIndex is a station's position in the simulator's station table.
type StationIndex int

// Coordinate is a station's geographic position. It is carried through for
// renderers and reports; the simulation never reads it.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// StationConfig describes a station as read from the station configuration.
type StationConfig struct {
	ID           string
	Name         string
	Location     Coordinate
	Capacity     int
	InitialBikes int
}

// Station is a fixed-capacity dock holding bikes and empty docks, together
// with the counters the final statistics are computed from.
//
// Bikes stays within [0, Capacity]: a mutation that would leave that range is
// refused and leaves the station untouched.
type Station struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
	Capacity int        `json:"capacity"`
	Bikes    int        `json:"bikes"`

	RidesStarted           int `json:"rides_started"`            // rides that took a bike from this station
	RidesEnded             int `json:"rides_ended"`              // rides that returned a bike to this station
	MinutesLowAvailability int `json:"minutes_low_availability"` // ticked minutes with no bikes
	MinutesLowDocks        int `json:"minutes_low_docks"`        // ticked minutes with no free docks
}

// NewStation creates a station from its configuration.
// Returns an error if capacity is negative or the initial bike count does not fit.
func NewStation(cfg StationConfig) (Station, error) {
	if cfg.Capacity < 0 {
		return Station{}, fmt.Errorf("station %q: capacity %d must be >= 0", cfg.ID, cfg.Capacity)
	}
	if cfg.InitialBikes < 0 || cfg.InitialBikes > cfg.Capacity {
		return Station{}, fmt.Errorf("station %q: initial bikes %d outside [0, %d]", cfg.ID, cfg.InitialBikes, cfg.Capacity)
	}
	return Station{
		ID:       cfg.ID,
		Name:     cfg.Name,
		Location: cfg.Location,
		Capacity: cfg.Capacity,
		Bikes:    cfg.InitialBikes,
	}, nil
}

// FreeDocks returns the number of empty docks.
func (s *Station) FreeDocks() int {
	return s.Capacity - s.Bikes
}

// ApplyRideStart removes a bike for a departing ride.
// Returns false and changes nothing if the station has no bikes.
func (s *Station) ApplyRideStart() bool {
	if s.Bikes <= 0 {
		return false
	}
	s.Bikes--
	s.RidesStarted++
	return true
}

// ApplyRideEnd docks a bike for an arriving ride.
// Returns false and changes nothing if the station has no free dock.
func (s *Station) ApplyRideEnd() bool {
	if s.Bikes >= s.Capacity {
		return false
	}
	s.Bikes++
	s.RidesEnded++
	return true
}

// TickLowResource records one simulated minute of low availability and/or
// low docks. Called once per minute after that minute's events are drained.
func (s *Station) TickLowResource() {
	if s.Bikes == 0 {
		s.MinutesLowAvailability++
	}
	if s.FreeDocks() == 0 {
		s.MinutesLowDocks++
	}
}

func (s Station) String() string {
	return fmt.Sprintf("Station{ID: %s, Name: %q, Bikes: %d/%d}", s.ID, s.Name, s.Bikes, s.Capacity)
}
