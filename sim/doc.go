// Package sim provides the core discrete-event simulation engine for the
// bike-share network.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - station.go: Station capacity, bike/dock occupancy and per-station counters
//   - event.go: Event variants (RideStart, RideEnd) and the Effect they describe
//   - queue.go: time-ordered EventQueue (ends before starts, then insertion order)
//   - simulator.go: the minute-stepped run loop, effect application and ticking
//   - statistics.go: leaderboard aggregation over all stations
//
// # Architecture
//
// Stations and rides live in flat tables owned by the Simulator. Rides refer
// to stations by StationIndex and events refer to rides by RideID, so there
// are no pointer cycles between rides, stations and events.
//
// Events never mutate state themselves. Event.Process returns an Effect that
// names the station operation and the follow-up events to schedule if the
// station accepts it; the Simulator applies the effect.
//
// Sub-packages:
//   - sim/network/: station JSON and ride CSV loaders
//   - sim/render/: Renderer implementations (headless, log, JSON lines)
//   - sim/trace/: capacity-rejection trace recording
package sim
